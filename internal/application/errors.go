package application

import "errors"

// Sentinel errors surfaced by the services. Handlers map these onto the
// HTTP envelope.
var (
	ErrEmailTaken            = errors.New("user already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidOrExpiredToken = errors.New("password reset token is invalid or expired")
	ErrPasswordMismatch      = errors.New("password and confirm password do not match")
	ErrMailSend              = errors.New("failed to send email")
	ErrMissingFields         = errors.New("please fill all details")
	ErrCollectionNotFound    = errors.New("collection not found")
	ErrUploadFailed          = errors.New("image upload failed")
)
