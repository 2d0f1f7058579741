package user

import "vidtube/internal/pkg/apperr"

var (
	ErrAllFieldsRequired   = apperr.Validation("All fields are required")
	ErrUserExists          = apperr.Conflict("User with email or username already exists")
	ErrAvatarRequired      = apperr.Validation("Avatar file is required")
	ErrUserNotFound        = apperr.NotFound("User does not exist")
	ErrInvalidCredentials  = apperr.Unauthorized("Invalid user credentials")
	ErrInvalidRefreshToken = apperr.Unauthorized("Invalid or expired refresh token")
)
