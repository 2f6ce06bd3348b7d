package service

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrForbidden             = errors.New("forbidden")
	ErrReversalWindowExpired = errors.New("reversal window expired")
	ErrEmailTaken            = errors.New("email already taken")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrBinAlreadyFull        = errors.New("bin already marked as full")
)
