package compliance

// Standard identifies a guideline quoted in compliance results.
type Standard struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SupportedStandards returns the guidance documents the catalogue encodes.
func SupportedStandards() []Standard {
	return []Standard{
		{ID: "owasp2025", Name: "OWASP 2025 Cryptographic Storage & Key Management guidance"},
		{ID: "nist800-131a", Name: "NIST SP 800-131A Rev. 2 (algorithm transitions)"},
		{ID: "nist800-57", Name: "NIST SP 800-57 Part 1 (key length recommendations)"},
		{ID: "nist-pqc", Name: "NIST FIPS 203/204 (post-quantum standards)"},
	}
}

// referenceMappings maps an algorithm kind onto the standard sections that
// govern it. Deprecated algorithms additionally cite the transition guidance.
var referenceMappings = map[Kind][]string{
	KindSymmetric:   {"owasp2025", "nist800-57"},
	KindAsymmetric:  {"owasp2025", "nist800-57"},
	KindHash:        {"owasp2025", "nist800-131a"},
	KindPostQuantum: {"owasp2025", "nist-pqc"},
}

// ReferencesFor returns the standard IDs that apply to algo.
func ReferencesFor(algo Algorithm) []string {
	refs := append([]string{}, referenceMappings[algo.Kind]...)
	if algo.Deprecated {
		refs = appendUnique(refs, "nist800-131a")
	}
	return refs
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
