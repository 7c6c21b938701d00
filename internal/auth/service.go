package auth

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
	"github.com/Domenick1991/happyfares/internal/repository"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

const minPasswordLength = 6

// bcrypt only reads the first 72 bytes.
const maxPasswordLength = 72

const invalidCredentials = "Invalid username or password"

// TokenStore tracks revoked token ids.
type TokenStore interface {
	RevokeToken(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type RegisterInput struct {
	Username string
	Password string
	Email    string
	IsAdmin  bool
}

type Session struct {
	User   *domain.User
	Token  string
	Claims *Claims
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Logout(ctx context.Context, claims *Claims) error
	Authenticate(ctx context.Context, token string) (*domain.User, *Claims, error)
}

type Service struct {
	users  repository.UserRepository
	tokens *TokenIssuer
	store  TokenStore
}

func NewService(users repository.UserRepository, tokens *TokenIssuer, store TokenStore) *Service {
	return &Service{users: users, tokens: tokens, store: store}
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	if input.Username == "" || input.Password == "" || input.Email == "" {
		return nil, domain.Invalid("All fields are required")
	}
	if !usernamePattern.MatchString(input.Username) {
		return nil, domain.Invalid("Username must be 3-20 characters and contain only letters, numbers and underscores")
	}
	if !domain.ValidEmail(input.Email) {
		return nil, domain.Invalid("Invalid email format")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.Invalid("Password must be at least 6 characters")
	}
	if len(input.Password) > maxPasswordLength {
		return nil, domain.Invalid("Password must be at most 72 bytes")
	}

	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, domain.Invalid("Username already exists")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := false
	if input.IsAdmin {
		admins, err := s.users.CountAdmins(ctx)
		if err != nil {
			return nil, err
		}
		admin = admins == 0
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Email:        strings.TrimSpace(input.Email),
		IsAdmin:      admin,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if domain.IsConflict(err) {
			return nil, domain.Invalid("Username already exists")
		}
		return nil, err
	}
	return s.newSession(user)
}

func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.UnauthorizedError{Msg: invalidCredentials}
		}
		return nil, err
	}
	if !CheckPassword(user.PasswordHash, password) {
		return nil, domain.UnauthorizedError{Msg: invalidCredentials}
	}
	return s.newSession(user)
}

// Logout revokes the token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil || s.store == nil {
		return nil
	}
	return s.store.RevokeToken(ctx, claims.ID, claims.Remaining(time.Now()))
}

func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, *Claims, error) {
	if token == "" {
		return nil, nil, domain.UnauthorizedError{Msg: "Unauthorized"}
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, nil, domain.UnauthorizedError{Msg: "Unauthorized"}
	}
	if s.store != nil {
		revoked, err := s.store.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, nil, err
		}
		if revoked {
			return nil, nil, domain.UnauthorizedError{Msg: "Unauthorized"}
		}
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, nil, domain.UnauthorizedError{Msg: errMalformedSubject.Error()}
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, nil, domain.UnauthorizedError{Msg: "Unauthorized"}
		}
		return nil, nil, err
	}
	return user, claims, nil
}

func (s *Service) newSession(user *domain.User) (*Session, error) {
	token, claims, err := s.tokens.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{User: user, Token: token, Claims: claims}, nil
}

var _ AuthUseCase = (*Service)(nil)
