package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrUnknownAssessment   = errors.New("unknown assessment")
	ErrAssessmentGender    = errors.New("assessment not applicable to user profile")
	ErrFlagNotFound        = errors.New("biomarker flag not found")
	ErrFlagAlreadyResolved = errors.New("biomarker flag already resolved")
	ErrConcurrentUpdate    = errors.New("concurrent update conflict, try again")
	ErrSubmissionLocked    = errors.New("another submission is in progress for this user")
)
