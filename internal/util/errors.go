package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrOrganizationMissing = errors.New("organization not found")
	ErrJobNotFound         = errors.New("job opening not found")
	ErrJobInactive         = errors.New("job opening is no longer active")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationMissing  = errors.New("application not found")
	ErrSessionNotFound     = errors.New("assessment session not found")
	ErrSessionClosed       = errors.New("assessment session already submitted")
	ErrInvalidAnswer       = errors.New("answer refers to an unknown question or option")
	ErrAssessmentMissing   = errors.New("assessment not found")
	ErrProfileIncomplete   = errors.New("candidate profile incomplete")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)
