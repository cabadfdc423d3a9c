package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/f24tech/edumate/internal/app/models"
	"github.com/f24tech/edumate/internal/pkg/apperrors"
	"github.com/f24tech/edumate/internal/pkg/auth"
)

// TeacherStore is the persistence contract the auth service depends on.
type TeacherStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
}

// LoginResult carries the issued token and the authenticated teacher id.
type LoginResult struct {
	Token     string `json:"token"`
	TeacherID int64  `json:"teacher_id"`
}

// AuthService defines the interface for the login boundary
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authServiceImpl struct {
	teachers   TeacherStore
	credential *auth.Credential
}

// NewAuthService creates a new auth service instance
func NewAuthService(teachers TeacherStore, credential *auth.Credential) AuthService {
	return &authServiceImpl{
		teachers:   teachers,
		credential: credential,
	}
}

// Login checks the supplied credentials against the stored teacher record
// and issues a bearer token. An unknown username and a wrong password
// produce the same error, so usernames cannot be enumerated.
func (s *authServiceImpl) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	teacher, err := s.teachers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: looking up teacher: %v", apperrors.ErrStorageFailed, err)
	}

	if !auth.CheckPassword(teacher.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return &LoginResult{
		Token:     s.credential.Issue(teacher.ID, teacher.Username),
		TeacherID: teacher.ID,
	}, nil
}
