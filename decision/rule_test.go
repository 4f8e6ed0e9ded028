package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileRule(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple boolean", expression: "!available"},
		{name: "provider count", expression: "len(providers) < 2"},
		{name: "membership", expression: `"Hulu" in providers`},
		{name: "helper function", expression: `contains(tmdbId, "60")`},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: "len(providers", wantErr: true},
		{name: "non-boolean result", expression: "len(providers)", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileRule(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, rule.Expression())
		})
	}
}

func TestRuleApprove(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		input      RuleInput
		want       bool
	}{
		{
			name:       "not available approves",
			expression: "!available",
			input:      RuleInput{TMDBID: "603"},
			want:       true,
		},
		{
			name:       "available declines",
			expression: "!available",
			input:      RuleInput{TMDBID: "603", Providers: []string{"Hulu"}, Available: true},
			want:       false,
		},
		{
			name:       "single provider tolerated",
			expression: "len(providers) < 2",
			input:      RuleInput{Providers: []string{"Hulu"}, Available: true},
			want:       true,
		},
		{
			name:       "case-insensitive helper",
			expression: `any(providers, contains(#, "hulu"))`,
			input:      RuleInput{Providers: []string{"Hulu"}, Available: true},
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := CompileRule(tt.expression)
			require.NoError(t, err)

			got, err := rule.Approve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
