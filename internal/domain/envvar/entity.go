package envvar

import (
	"fmt"
	"strings"
)

// EnvVar represents an environment variable description to be translated
// into platform payloads. It is constructed per request, projected, and
// discarded; nothing is persisted.
type EnvVar struct {
	key         string
	value       string
	varType     VarType
	targets     TargetList
	gitBranch   *string
	description *string
}

// NewEnvVar creates a new environment variable description.
// A nil target list defaults to all three environments; an explicitly
// provided list must be a non-empty subset of the defined labels.
func NewEnvVar(
	key, value, varType string,
	targets []string,
	gitBranch, description *string,
) (*EnvVar, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}

	if value == "" {
		return nil, ErrEmptyValue
	}

	t, err := NewVarType(varType)
	if err != nil {
		return nil, fmt.Errorf("invalid type: %w", err)
	}

	var targetList TargetList
	if targets == nil {
		targetList = DefaultTargets()
	} else {
		targetList, err = NewTargetList(targets)
		if err != nil {
			return nil, fmt.Errorf("invalid target: %w", err)
		}
	}

	return &EnvVar{
		key:         key,
		value:       value,
		varType:     t,
		targets:     targetList,
		gitBranch:   gitBranch,
		description: description,
	}, nil
}

// Getters

func (e *EnvVar) Key() string {
	return e.key
}

func (e *EnvVar) Value() string {
	return e.value
}

func (e *EnvVar) Type() VarType {
	return e.varType
}

func (e *EnvVar) Targets() TargetList {
	return e.targets
}

func (e *EnvVar) GitBranch() *string {
	return e.gitBranch
}

func (e *EnvVar) Description() *string {
	return e.description
}

// Masked reports whether the CI/CD platform should hide the value from
// logs. True for every type except plain.
func (e *EnvVar) Masked() bool {
	return e.varType != TypePlain
}

// Protected reports whether the CI/CD platform should restrict the
// variable to protected branches (e.g. the default branch). True only
// when production is the sole target.
func (e *EnvVar) Protected() bool {
	return len(e.targets) == 1 && e.targets[0] == TargetProduction
}

// EnvironmentScope returns the CI/CD environment scope pattern.
// Always the wildcard for now; git_branch could eventually name
// environments here.
func (e *EnvVar) EnvironmentScope() string {
	return "*"
}

// Raw reports whether CI/CD variable expansion is disabled. Always true:
// neither downstream platform performs expansion.
func (e *EnvVar) Raw() bool {
	return true
}
