package codec

import (
	"testing"

	"github.com/zonekit/zoned/internal/zones/domain"
)

func TestPassesContext(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		policy   *domain.ContextPolicy
		expected bool
	}{
		{
			name:     "no policy configured always passes",
			tags:     []string{"anything"},
			policy:   nil,
			expected: true,
		},
		{
			name:     "absent context always passes",
			tags:     nil,
			policy:   &domain.ContextPolicy{Allow: []string{"prod"}},
			expected: true,
		},
		{
			name:     "match_empty with empty context passes",
			tags:     []string{},
			policy:   &domain.ContextPolicy{MatchEmpty: true},
			expected: true,
		},
		{
			name:     "empty context without match_empty fails",
			tags:     []string{},
			policy:   &domain.ContextPolicy{MatchEmpty: false, Allow: []string{"prod"}},
			expected: false,
		},
		{
			name:     "disjoint tags fail",
			tags:     []string{"staging"},
			policy:   &domain.ContextPolicy{Allow: []string{"prod"}},
			expected: false,
		},
		{
			name:     "intersecting tags pass",
			tags:     []string{"prod", "staging"},
			policy:   &domain.ContextPolicy{Allow: []string{"prod"}},
			expected: true,
		},
		{
			name:     "absent context passes even with restrictive policy",
			tags:     nil,
			policy:   &domain.ContextPolicy{MatchEmpty: false, Allow: nil},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PassesContext(tt.tags, tt.policy); got != tt.expected {
				t.Errorf("PassesContext(%v, %+v) = %v, want %v", tt.tags, tt.policy, got, tt.expected)
			}
		})
	}
}
