package compliance

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

// Vulnerability names the quantum attack that applies to an algorithm.
type Vulnerability string

const (
	VulnerabilityNone    Vulnerability = "NONE"
	VulnerabilityGrover  Vulnerability = "GROVER"
	VulnerabilityShor    Vulnerability = "SHOR"
	VulnerabilityUnknown Vulnerability = "UNKNOWN"
)

// quantumAdequateBits is the nominal size at which Grover's square-root
// speedup still leaves an acceptable security margin.
const quantumAdequateBits = 256

// QuantumResult is the outcome of CheckQuantumResistance.
type QuantumResult struct {
	Algorithm        string        `json:"algorithm"`
	QuantumResistant bool          `json:"quantum_resistant"`
	Vulnerability    Vulnerability `json:"vulnerability"`
	RiskLevel        scoring.Level `json:"risk_level"`
	Notes            string        `json:"notes"`
	Recommendations  []string      `json:"recommendations"`
}

// CheckQuantumResistance classifies an algorithm by the quantum attack that
// threatens its family.
func CheckQuantumResistance(name string) QuantumResult {
	result := QuantumResult{
		Algorithm:       name,
		Vulnerability:   VulnerabilityUnknown,
		RiskLevel:       scoring.LevelUnknown,
		Recommendations: []string{},
	}

	algo, ok := LookupAlgorithm(name)
	if !ok {
		result.Notes = fmt.Sprintf("cannot assess quantum resistance of unrecognized algorithm %s", name)
		return result
	}

	switch algo.Kind {
	case KindAsymmetric:
		result.Vulnerability = VulnerabilityShor
		result.RiskLevel = scoring.LevelHigh
		result.Notes = "Shor's algorithm breaks factoring and discrete-log primitives in polynomial time."
		result.Recommendations = append(result.Recommendations,
			"Begin planning migration to post-quantum cryptography (PQC).",
			"Consider ML-KEM (CRYSTALS-Kyber), ML-DSA (CRYSTALS-Dilithium), or hybrid approaches.")

	case KindSymmetric, KindHash:
		result.Vulnerability = VulnerabilityGrover
		result.QuantumResistant = algo.StrengthBits >= quantumAdequateBits
		switch {
		case !result.QuantumResistant:
			result.RiskLevel = scoring.LevelHigh
			result.Notes = fmt.Sprintf("Grover's algorithm halves the %d-bit security margin, which is not adequate.", algo.StrengthBits)
			if algo.StrengthBits == 0 {
				result.Notes = "Key length not stated; Grover's algorithm halves the security margin of short keys."
			}
			result.Recommendations = append(result.Recommendations,
				"Use 256-bit symmetric keys or 384-bit+ hash outputs for long-term quantum security.")
		case algo.Kind == KindSymmetric:
			result.RiskLevel = scoring.LevelMedium
			result.Notes = fmt.Sprintf("%d-bit keys retain ~%d-bit security under Grover's algorithm, acceptable for OWASP 2025.",
				algo.StrengthBits, algo.StrengthBits/2)
		default:
			result.RiskLevel = scoring.LevelLow
			result.Notes = "Hash outputs need doubled length for quantum resistance."
			if algo.StrengthBits < 384 {
				result.Recommendations = append(result.Recommendations,
					"SHA-384 or larger is recommended for long-term security.")
			}
		}

	case KindPostQuantum:
		result.Vulnerability = VulnerabilityNone
		result.QuantumResistant = true
		result.RiskLevel = scoring.LevelLow
		result.Notes = "Standardized post-quantum algorithm."
	}

	return result
}
