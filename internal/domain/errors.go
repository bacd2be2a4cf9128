package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidTaskID  = errors.New("task ID must be a positive integer")
	ErrCorruptStore   = errors.New("task file is corrupt")
	ErrConfigExists   = errors.New("config file already exists")
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrConfigNil      = errors.New("config is nil")
	ErrSourceNotFound = errors.New("source task file not found")
	ErrNoLogFile      = errors.New("no log file")
)
