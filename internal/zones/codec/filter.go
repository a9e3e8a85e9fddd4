package codec

import (
	"slices"

	"github.com/zonekit/zoned/internal/zones/domain"
)

// PassesContext reports whether a record's context tags permit its
// inclusion under the given policy. A nil policy always passes
// (fail-open: absent configuration must not hide records), as does a
// record without a context field (nil tags). A present tag list passes
// when the policy matches empty lists and the list is empty, or when
// it shares at least one tag with the policy's allow set.
func PassesContext(tags []string, policy *domain.ContextPolicy) bool {
	if policy == nil || tags == nil {
		return true
	}
	if policy.MatchEmpty && len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if slices.Contains(policy.Allow, tag) {
			return true
		}
	}
	return false
}
