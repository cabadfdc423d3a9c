package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialIssueVerifyRoundTrip(t *testing.T) {
	credential := NewCredential()

	before := time.Now().Add(-time.Second)
	token := credential.Issue(42, "teacher")
	after := time.Now().Add(time.Second)

	session, err := credential.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), session.TeacherID)
	assert.Equal(t, "teacher", session.Username)
	assert.True(t, session.IssuedAt.After(before) && session.IssuedAt.Before(after))
}

func TestCredentialIssueIsPlainBase64(t *testing.T) {
	credential := NewCredential()

	token := credential.Issue(7, "mrs.khan")

	decoded, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Regexp(t, `^7:mrs\.khan:\d+$`, string(decoded))
}

func TestCredentialVerifyUsernameWithColons(t *testing.T) {
	credential := NewCredential()

	for _, username := range []string{"a:b", "a:b:c", ":leading", "trailing:"} {
		token := credential.Issue(3, username)

		session, err := credential.Verify(token)
		require.NoError(t, err, "username %q", username)
		assert.Equal(t, username, session.Username)
		assert.Equal(t, int64(3), session.TeacherID)
	}
}

func TestCredentialVerifyRejectsMalformedTokens(t *testing.T) {
	credential := NewCredential()

	cases := map[string]string{
		"not base64":        "%%%not-base64%%%",
		"too few parts":     base64.StdEncoding.EncodeToString([]byte("1:teacher")),
		"non-numeric id":    base64.StdEncoding.EncodeToString([]byte("abc:teacher:1700000000")),
		"zero id":           base64.StdEncoding.EncodeToString([]byte("0:teacher:1700000000")),
		"non-numeric stamp": base64.StdEncoding.EncodeToString([]byte("1:teacher:later")),
		"empty":             "",
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			session, err := credential.Verify(token)
			assert.Nil(t, session)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
