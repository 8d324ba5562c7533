package compliance

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

// StrengthResult is the outcome of CheckAlgorithmStrength.
// Compliant implies RiskLevel is LOW.
type StrengthResult struct {
	Algorithm       string        `json:"algorithm"`
	KeyLength       int           `json:"key_length,omitempty"`
	Family          Family        `json:"family,omitempty"`
	Recognized      bool          `json:"recognized"`
	Compliant       bool          `json:"compliant"`
	RiskLevel       scoring.Level `json:"risk_level"`
	Recommendations []string      `json:"recommendations"`
	References      []string      `json:"references,omitempty"`
}

// CheckAlgorithmStrength checks whether an algorithm and key length meet
// OWASP 2025 standards. keyLength is in bits; zero means not supplied.
func CheckAlgorithmStrength(name string, keyLength int) StrengthResult {
	result := StrengthResult{
		Algorithm:       name,
		KeyLength:       keyLength,
		RiskLevel:       scoring.LevelMedium,
		Recommendations: []string{},
	}

	algo, ok := LookupAlgorithm(name)
	if !ok {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%s is not a recognized algorithm. Verify it against the OWASP 2025 approved list before use.", name))
		return result
	}

	result.Recognized = true
	result.Family = algo.Family
	result.References = ReferencesFor(algo)

	if algo.Deprecated {
		result.RiskLevel = algo.Severity
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%s: %s is deprecated in OWASP 2025. Migrate to %s immediately.", algo.Severity, algo.Name, algo.Replacement))
		return result
	}

	policy := familyPolicies[algo.Family]

	// A name that fixes the key size caps whatever length the caller claims.
	effective := keyLength
	if algo.StrengthBits > 0 && keyLength > algo.StrengthBits {
		effective = algo.StrengthBits
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%s fixes a %d-bit key; the supplied %d bits do not apply.", algo.Name, algo.StrengthBits, keyLength))
	}

	if policy.DeprecatedBelow > 0 && effective < policy.DeprecatedBelow {
		result.RiskLevel = scoring.LevelCritical
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("CRITICAL: %s keys below %d bits are deprecated in OWASP 2025. %s",
				algo.Family, policy.DeprecatedBelow, policy.ShortKeyAdvice))
		return result
	}

	if effective < policy.MinKeyLength {
		result.RiskLevel = scoring.LevelHigh
		result.Recommendations = append(result.Recommendations, policy.ShortKeyAdvice)
		return result
	}

	result.Compliant = true
	result.RiskLevel = scoring.LevelLow
	if algo.Kind == KindHash {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Hash function %s meets OWASP 2025 standards.", algo.Name))
	} else {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%s meets OWASP 2025 standards.", algo.Name))
	}
	return result
}
