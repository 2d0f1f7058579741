package user

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"vidtube/internal/domain"
	"vidtube/internal/pkg/apperr"
	"vidtube/internal/pkg/password"
)

// Service orchestrates registration, login, logout and session refresh. It
// is the only component the request layer talks to.
type Service struct {
	users  UserRepositoryInterface
	media  Uploader
	signer tokenSigner
}

func NewService(users UserRepositoryInterface, media Uploader, signer tokenSigner) *Service {
	return &Service{users: users, media: media, signer: signer}
}

// Register validates and normalizes the form, uploads the staged media and
// creates the account. The avatar is required; the cover image is optional
// and stored as an empty URL when absent.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if fullName == "" || username == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return nil, ErrAllFieldsRequired
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperr.Internal("Failed to check existing users", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	if req.AvatarPath == "" {
		return nil, ErrAvatarRequired
	}

	avatarURL, err := s.media.Upload(ctx, req.AvatarPath)
	if err != nil {
		return nil, err
	}

	coverImageURL, err := s.media.Upload(ctx, req.CoverImagePath)
	if err != nil {
		return nil, err
	}

	digest, err := password.Hash(req.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to process credentials", err)
	}

	u := &domain.User{
		FullName:      fullName,
		Username:      username,
		Email:         email,
		PasswordHash:  digest,
		AvatarURL:     avatarURL,
		CoverImageURL: coverImageURL,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// The pre-check and the insert are not atomic; the unique index
		// catches the race between two concurrent registrations.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, apperr.Internal("Something went wrong while registering the user", err)
	}

	created, err := s.users.GetByID(ctx, u.ID)
	if err != nil {
		return nil, apperr.Internal("Something went wrong while registering the user", err)
	}

	sanitized := created.Sanitized()
	return &sanitized, nil
}

// Login resolves the identifier, verifies the password and issues a fresh
// token pair. Unknown identifier maps to 404, bad password to 401.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, *TokenPair, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, nil, ErrAllFieldsRequired
	}

	u, err := s.users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, apperr.Internal("Failed to look up user", err)
	}

	if !password.Verify(req.Password, u.PasswordHash) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.IssueTokenPair(ctx, u.ID)
	if err != nil {
		return nil, nil, err
	}

	sanitized := u.Sanitized()
	return &sanitized, pair, nil
}

// Logout clears the account's stored refresh token, ending the session
// server-side.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	if err := s.users.UpdateRefreshToken(ctx, userID, ""); err != nil {
		return apperr.Internal("Failed to log out", err)
	}
	return nil
}

// Refresh rotates the token pair. The presented token must both verify and
// match the account's stored single-slot value: issuing a new pair
// invalidates every previously issued refresh token.
func (s *Service) Refresh(ctx context.Context, presented string) (*TokenPair, error) {
	if presented == "" {
		return nil, ErrInvalidRefreshToken
	}

	claims, err := s.signer.ValidateRefreshToken(presented)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	if u.RefreshToken != presented {
		return nil, ErrInvalidRefreshToken
	}

	return s.IssueTokenPair(ctx, u.ID)
}

// CurrentUser returns the account without secret fields.
func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, apperr.Internal("Failed to load user", err)
	}
	sanitized := u.Sanitized()
	return &sanitized, nil
}

// IssueTokenPair mints an access/refresh pair for the account and persists
// the refresh token as the account's single current value (latest-wins).
func (s *Service) IssueTokenPair(ctx context.Context, userID int64) (*TokenPair, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("Failed to issue session tokens", err)
	}

	access, err := s.signer.GenerateAccessToken(u.ID, u.Username, u.Email)
	if err != nil {
		return nil, apperr.Internal("Failed to issue session tokens", err)
	}
	refresh, err := s.signer.GenerateRefreshToken(u.ID)
	if err != nil {
		return nil, apperr.Internal("Failed to issue session tokens", err)
	}

	if err := s.users.UpdateRefreshToken(ctx, u.ID, refresh); err != nil {
		return nil, apperr.Internal("Failed to issue session tokens", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
