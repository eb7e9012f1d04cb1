package domain

import (
	"errors"
)

const RoleUser = "user"

var (
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "authorization token is missing"
	MessageFailedTokenInvalid = "authorization token is invalid"
	MessageServiceUnavailable = "service unavailable"

	ErrParseID         = errors.New("failed to parse id")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrTokenInvalid    = errors.New("token invalid")
	ErrTokenExpired    = errors.New("token expired")
	ErrStorageDisabled = errors.New("image storage is not configured")
)
