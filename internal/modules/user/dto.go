package user

import "vidtube/internal/domain"

// RegisterRequest carries the parsed registration form. The staged paths
// point at files the request layer already wrote to local temp storage.
type RegisterRequest struct {
	FullName string `form:"fullName" binding:"required"`
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`

	AvatarPath     string `form:"-"`
	CoverImagePath string `form:"-"`
}

type LoginRequest struct {
	// Identifier is a username or an email, matched case-insensitively.
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is the ephemeral access/refresh credential pair. The access
// token is never persisted; the refresh token becomes the account's single
// stored value.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type LoginResponse struct {
	User         domain.User `json:"user"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
}
