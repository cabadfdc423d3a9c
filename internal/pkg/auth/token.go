package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Token errors
var (
	ErrInvalidToken = errors.New("invalid token")
)

// Session represents the identity carried inside an issued token.
type Session struct {
	TeacherID int64
	Username  string
	IssuedAt  time.Time
}

// Credential issues and verifies the opaque bearer tokens handed out at
// login. The token is the teacher id, username, and issue timestamp joined
// with ':' and base64-encoded. It is reversible, unsigned, and carries no
// expiry; it asserts identity only to callers that choose to decode it.
//
// No record operation in this service calls Verify. Authorization stops at
// the login check, and the gap is left visible here rather than papered
// over with enforcement the original contract never had.
type Credential struct{}

// NewCredential creates a Credential token codec.
func NewCredential() *Credential {
	return &Credential{}
}

// Issue encodes a bearer token for the given teacher.
func (c *Credential) Issue(teacherID int64, username string) string {
	raw := fmt.Sprintf("%d:%s:%d", teacherID, username, time.Now().Unix())
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Verify decodes a token back into the session it was issued for. It proves
// nothing beyond the token being well formed.
func (c *Credential) Verify(token string) (*Session, error) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// The username may itself contain ':'; the id ends at the first
	// separator and the timestamp starts at the last one.
	raw := string(decoded)
	first := strings.Index(raw, ":")
	last := strings.LastIndex(raw, ":")
	if first < 0 || last <= first {
		return nil, ErrInvalidToken
	}

	teacherID, err := strconv.ParseInt(raw[:first], 10, 64)
	if err != nil || teacherID <= 0 {
		return nil, ErrInvalidToken
	}

	issuedUnix, err := strconv.ParseInt(raw[last+1:], 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Session{
		TeacherID: teacherID,
		Username:  raw[first+1 : last],
		IssuedAt:  time.Unix(issuedUnix, 0),
	}, nil
}
