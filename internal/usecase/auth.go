package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/irohit373/AlignTODO/internal/domain"
	"github.com/irohit373/AlignTODO/internal/identity"
	"github.com/irohit373/AlignTODO/internal/repository"
)

type AuthUsecase struct {
	users    repository.UserRepository
	identity *identity.Manager
}

func NewAuthUsecase(users repository.UserRepository, im *identity.Manager) *AuthUsecase {
	return &AuthUsecase{users: users, identity: im}
}

// Register creates the account and returns it with a freshly issued
// session token. Emails are stored lowercased so the login key is
// case-insensitive.
func (u *AuthUsecase) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := u.identity.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := u.users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, "", domain.ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := u.identity.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the account with a session
// token. Unknown email and wrong password both come back as
// domain.ErrInvalidCredentials; the caller cannot tell which.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !u.identity.CheckPassword(password, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := u.identity.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}
