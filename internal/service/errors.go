package service

import "errors"

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrTalentNotFound       = errors.New("talent not found")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("talent already applied to this job")
)
