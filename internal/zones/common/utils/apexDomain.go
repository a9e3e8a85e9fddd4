package utils

import "golang.org/x/net/publicsuffix"

// ApexDomain returns the registrable apex for a zone name, used to group
// related zone documents under one index key. Names that do not parse
// under the public suffix list (internal zones, bare TLDs) fall back to
// their canonical form.
func ApexDomain(name string) string {
	name = CanonicalName(name)
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		apex = name
	}
	return apex
}
