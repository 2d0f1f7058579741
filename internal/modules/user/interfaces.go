package user

import (
	"context"

	"vidtube/internal/domain"
	"vidtube/internal/pkg/jwt"
)

// UserRepositoryInterface — only the methods the user service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateRefreshToken(ctx context.Context, id int64, token string) error
}

// Uploader moves a staged file to durable storage. Implemented by
// mediastore.Pipeline.
type Uploader interface {
	Upload(ctx context.Context, stagedPath string) (string, error)
}

type tokenSigner interface {
	GenerateAccessToken(userID int64, username, email string) (string, error)
	GenerateRefreshToken(userID int64) (string, error)
	ValidateRefreshToken(token string) (*jwt.RefreshClaims, error)
}
