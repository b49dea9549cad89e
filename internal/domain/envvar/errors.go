package envvar

import "errors"

var (
	// ErrEmptyKey is returned when the variable key is missing or blank
	ErrEmptyKey = errors.New("environment variable key cannot be empty")

	// ErrEmptyValue is returned when the variable value is missing
	ErrEmptyValue = errors.New("environment variable value cannot be empty")

	// ErrInvalidVarType is returned when the type is not one of secret, encrypted, plain
	ErrInvalidVarType = errors.New("invalid environment variable type")

	// ErrInvalidTarget is returned when a target is not one of production, preview, development
	ErrInvalidTarget = errors.New("invalid deployment target")

	// ErrEmptyTargetList is returned when an explicit target list contains no entries
	ErrEmptyTargetList = errors.New("target list cannot be empty")
)
