package envvar

import (
	"fmt"
)

// VarType is a value object for the variable's masking type.
// Based on Vercel's type enum: plain is plaintext and unsuitable for
// secrets, secret is masked, encrypted is masked and encrypted.
type VarType string

const (
	TypeSecret    VarType = "secret"
	TypeEncrypted VarType = "encrypted"
	TypePlain     VarType = "plain"
)

// NewVarType creates a VarType with validation
func NewVarType(value string) (VarType, error) {
	switch VarType(value) {
	case TypeSecret, TypeEncrypted, TypePlain:
		return VarType(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidVarType, value)
	}
}

func (t VarType) String() string {
	return string(t)
}

// Target is a value object for a deployment environment label
type Target string

const (
	TargetProduction  Target = "production"
	TargetPreview     Target = "preview"
	TargetDevelopment Target = "development"
)

// NewTarget creates a Target with validation
func NewTarget(value string) (Target, error) {
	switch Target(value) {
	case TargetProduction, TargetPreview, TargetDevelopment:
		return Target(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTarget, value)
	}
}

func (t Target) String() string {
	return string(t)
}

// TargetList is the ordered list of deployment environments a variable
// applies to. Order is irrelevant to the derivations but entries are kept
// as given.
type TargetList []Target

// NewTargetList creates a TargetList with validation.
// An explicitly provided list must be non-empty.
func NewTargetList(values []string) (TargetList, error) {
	if len(values) == 0 {
		return nil, ErrEmptyTargetList
	}

	targets := make(TargetList, 0, len(values))
	for _, v := range values {
		target, err := NewTarget(v)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	return targets, nil
}

// DefaultTargets returns the default target list: all three environments
func DefaultTargets() TargetList {
	return TargetList{TargetDevelopment, TargetPreview, TargetProduction}
}

// Strings returns the targets as plain strings
func (l TargetList) Strings() []string {
	out := make([]string, len(l))
	for i, t := range l {
		out[i] = string(t)
	}
	return out
}

// Contains reports whether the list includes the given target
func (l TargetList) Contains(target Target) bool {
	for _, t := range l {
		if t == target {
			return true
		}
	}
	return false
}
