package decision

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RuleInput is the data a verdict rule is evaluated against
type RuleInput struct {
	// TMDBID is the movie identifier from the notification
	TMDBID string
	// Providers is the allow-list-filtered availability set
	Providers []string
	// Available is true when Providers is non-empty
	Available bool
}

// Rule is a compiled verdict override expression. The expression sees
// tmdbId, providers and available, and must evaluate to a boolean: true
// approves the request, false declines it.
//
// Example rules:
//
//	!available
//	len(providers) < 2
//	!("Hulu" in providers)
type Rule struct {
	expression string
	program    *vm.Program
}

// CompileRule compiles a verdict rule expression
func CompileRule(expression string) (*Rule, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty rule expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(ruleHelpers()),
		expr.AllowUndefinedVariables(), // rule input fields
		expr.AsBool(),                  // ensure boolean result
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile rule '%s': %w", expression, err)
	}

	return &Rule{expression: expression, program: program}, nil
}

// Approve evaluates the rule and reports whether the request should be
// approved
func (r *Rule) Approve(input RuleInput) (bool, error) {
	env := ruleHelpers()
	env["tmdbId"] = input.TMDBID
	env["providers"] = input.Providers
	env["available"] = input.Available

	result, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate rule '%s': %w", r.expression, err)
	}

	// Guaranteed bool by the AsBool compile option
	return result.(bool), nil
}

// Expression returns the original rule expression
func (r *Rule) Expression() string {
	return r.expression
}

// ruleHelpers defines helper functions available inside rule expressions
func ruleHelpers() map[string]any {
	return map[string]any{
		// String helpers
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}
