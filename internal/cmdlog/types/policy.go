package types

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ErrorPolicy decides what a run does with a line that fails to parse or apply.
type ErrorPolicy string

const (
	HALT_ON_ERROR     ErrorPolicy = "halt"
	CONTINUE_ON_ERROR ErrorPolicy = "continue"
)

var ErrorPolicies = []ErrorPolicy{HALT_ON_ERROR, CONTINUE_ON_ERROR}

func (policy ErrorPolicy) IsValid() bool {
	return lo.Contains(ErrorPolicies, policy)
}

// Lets env parsing reject unknown policies up front
func (policy *ErrorPolicy) UnmarshalText(text []byte) error {
	candidate := ErrorPolicy(strings.ToLower(strings.TrimSpace(string(text))))
	if !candidate.IsValid() {
		return fmt.Errorf("unknown error policy %q, expected one of %v", string(text), ErrorPolicies)
	}

	*policy = candidate
	return nil
}
