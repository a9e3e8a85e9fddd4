package domain

import "slices"

// ContextPolicy decides which context-tagged records a deployment
// serves. A nil *ContextPolicy means no policy is configured and every
// record passes (fail-open: absent configuration must not hide records).
type ContextPolicy struct {
	// MatchEmpty admits records whose context tag list is present but empty.
	MatchEmpty bool
	// Allow is the set of context tags this deployment serves.
	Allow []string
}

// Clone returns an independent copy of the policy, so a conversion in
// progress is unaffected by later configuration changes. Cloning a nil
// policy returns nil.
func (p *ContextPolicy) Clone() *ContextPolicy {
	if p == nil {
		return nil
	}
	return &ContextPolicy{
		MatchEmpty: p.MatchEmpty,
		Allow:      slices.Clone(p.Allow),
	}
}
