package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"vidtube/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	FullName      string    `gorm:"column:full_name"`
	Username      string    `gorm:"column:username;uniqueIndex"`
	Email         string    `gorm:"column:email;uniqueIndex"`
	PasswordHash  string    `gorm:"column:password_hash"`
	AvatarURL     string    `gorm:"column:avatar_url"`
	CoverImageURL string    `gorm:"column:cover_image_url"`
	RefreshToken  *string   `gorm:"column:refresh_token"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

// Models lists everything AutoMigrate needs to know about.
func Models() []interface{} {
	return []interface{}{&userModel{}}
}

func toDomainUser(m userModel) *domain.User {
	var refresh string
	if m.RefreshToken != nil {
		refresh = *m.RefreshToken
	}
	return &domain.User{
		ID:            m.ID,
		FullName:      m.FullName,
		Username:      m.Username,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		AvatarURL:     m.AvatarURL,
		CoverImageURL: m.CoverImageURL,
		RefreshToken:  refresh,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var refresh *string
	if u.RefreshToken != "" {
		v := u.RefreshToken
		refresh = &v
	}
	return userModel{
		ID:            u.ID,
		FullName:      u.FullName,
		Username:      strings.ToLower(strings.TrimSpace(u.Username)),
		Email:         strings.ToLower(strings.TrimSpace(u.Email)),
		PasswordHash:  u.PasswordHash,
		AvatarURL:     u.AvatarURL,
		CoverImageURL: u.CoverImageURL,
		RefreshToken:  refresh,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return gorm.ErrDuplicatedKey
		}
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

// isUniqueViolation normalizes duplicate-key errors across drivers. The
// postgres translator already yields gorm.ErrDuplicatedKey; the pure-Go
// sqlite driver used in tests reports the constraint in the message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// GetByUsernameOrEmail resolves a login identifier, matching either column
// case-insensitively.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	ident := strings.ToLower(strings.TrimSpace(identifier))
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(username) = ? OR LOWER(email) = ?", ident, ident).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(username) = ? OR LOWER(email) = ?",
			strings.ToLower(strings.TrimSpace(username)),
			strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	if tx.Error != nil {
		return false, tx.Error
	}
	return count > 0, nil
}

// UpdateRefreshToken overwrites the account's single refresh-token slot
// without touching any other column. An empty token clears the slot.
func (r *UserRepository) UpdateRefreshToken(ctx context.Context, id int64, token string) error {
	var value *string
	if token != "" {
		value = &token
	}
	return r.db.WithContext(ctx).Model(&userModel{}).
		Where("id = ?", id).
		Update("refresh_token", value).Error
}
