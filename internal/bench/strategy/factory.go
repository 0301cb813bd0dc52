package strategy

import "fmt"

// New creates a strategy of the specified type.
//
// Supported types:
//   - "sequential" - one unit after another, fully blocking
//   - "cooperative" - all units multiplexed over one goroutine
//   - "parallel" - units distributed across a worker pool
func New(strategyType Type) (Strategy, error) {
	switch strategyType {
	case TypeSequential:
		return NewSequential(), nil
	case TypeCooperative:
		return NewCooperative(), nil
	case TypeParallel:
		return NewParallel(), nil
	default:
		return nil, fmt.Errorf("unknown strategy type: %s", strategyType)
	}
}

// ParseType converts a string to a strategy Type, rejecting unknown names.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !IsValidType(s) {
		return "", fmt.Errorf("unknown strategy type: %s", s)
	}
	return t, nil
}

// IsValidType returns true if s names a supported strategy.
func IsValidType(s string) bool {
	switch Type(s) {
	case TypeSequential, TypeCooperative, TypeParallel:
		return true
	default:
		return false
	}
}

// Types returns all supported strategy types in comparison order.
func Types() []Type {
	return []Type{TypeSequential, TypeCooperative, TypeParallel}
}
