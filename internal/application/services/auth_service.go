package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medlocate/medlocate-backend/internal/domain/entities"
	"github.com/medlocate/medlocate-backend/internal/domain/providers"
	"github.com/medlocate/medlocate-backend/internal/domain/repositories"
	"github.com/medlocate/medlocate-backend/pkg/auth"
	appErrors "github.com/medlocate/medlocate-backend/pkg/errors"
)

const (
	minPasswordLength = 6

	// refreshKeyPrefix namespaces refresh-token hashes in the session store
	refreshKeyPrefix = "session:refresh:"
)

// AuthService handles account creation, sessions, and role resolution.
// Refresh tokens are opaque; only their SHA-256 hashes are stored, keyed
// to the account they authenticate.
type AuthService struct {
	userRepo        repositories.UserRepository
	roleRepo        repositories.UserRoleRepository
	sessions        providers.CacheProvider
	jwtSecret       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, roleRepo repositories.UserRoleRepository, sessions providers.CacheProvider, jwtSecret string, accessTokenTTL, refreshTokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		roleRepo:        roleRepo,
		sessions:        sessions,
		jwtSecret:       jwtSecret,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// TokenPair is a signed access token plus the opaque refresh token that
// can replace it
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SignUp creates a new account. New accounts have no role rows and
// resolve to the ordinary user role.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*entities.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, appErrors.NewValidationError("a valid email address is required")
	}
	if len(password) < minPasswordLength {
		return nil, appErrors.NewValidationError("password must be at least 6 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to hash password", err)
	}
	user := &entities.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifies credentials and opens a session. Unknown email and
// wrong password produce the same error.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*entities.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if appErrors.TypeOf(err) == appErrors.ErrorTypeNotFound {
			return nil, nil, appErrors.NewUnauthorizedError("invalid email or password")
		}
		return nil, nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, nil, appErrors.NewUnauthorizedError("invalid email or password")
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a session: the presented refresh token is revoked and a
// new pair is issued. An unknown or expired token is unauthorized.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	key := refreshKeyPrefix + auth.HashRefreshToken(refreshToken)
	userID, err := s.sessions.Get(ctx, key)
	if err != nil || len(userID) == 0 {
		return nil, appErrors.NewUnauthorizedError("invalid or expired refresh token")
	}

	user, err := s.userRepo.GetByID(ctx, string(userID))
	if err != nil {
		return nil, appErrors.NewUnauthorizedError("invalid or expired refresh token")
	}

	// Rotate before issuing so a replayed token is dead either way.
	if err := s.sessions.Delete(ctx, key); err != nil {
		return nil, appErrors.NewInternalError("failed to rotate refresh token", err)
	}
	return s.issueTokens(ctx, user)
}

// SignOut revokes a refresh token. Revoking an already-dead token is not
// an error.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.sessions.Delete(ctx, refreshKeyPrefix+auth.HashRefreshToken(refreshToken))
}

// ResolveRole computes the effective role of a user from their role rows.
// The first admin row found wins and carries its bound hospital; a user
// with rows but no admin row, or with no rows at all, is an ordinary user.
func (s *AuthService) ResolveRole(ctx context.Context, userID string) (*entities.RoleAssignment, error) {
	rows, err := s.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Role == entities.RoleAdmin {
			return &entities.RoleAssignment{Role: entities.RoleAdmin, HospitalID: row.HospitalID}, nil
		}
	}
	return &entities.RoleAssignment{Role: entities.RoleUser}, nil
}

// VerifyAccessToken parses and validates a signed access token
func (s *AuthService) VerifyAccessToken(raw string) (*entities.Identity, error) {
	claims, err := auth.ParseAccessToken(raw, s.jwtSecret)
	if err != nil {
		return nil, appErrors.NewUnauthorizedError("invalid or expired access token")
	}
	return &entities.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *entities.User) (*TokenPair, error) {
	access, err := auth.MakeAccessToken(user.ID, user.Email, s.jwtSecret, s.accessTokenTTL)
	if err != nil {
		return nil, appErrors.NewInternalError("failed to sign access token", err)
	}
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, appErrors.NewInternalError("failed to generate refresh token", err)
	}
	ttlSeconds := int(s.refreshTokenTTL.Seconds())
	if err := s.sessions.Set(ctx, refreshKeyPrefix+hash, []byte(user.ID), ttlSeconds); err != nil {
		return nil, appErrors.NewInternalError("failed to store refresh token", err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: raw,
		ExpiresIn:    int(s.accessTokenTTL.Seconds()),
	}, nil
}
