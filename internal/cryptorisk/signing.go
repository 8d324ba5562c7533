package cryptorisk

import (
	"fmt"
	"strings"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

// SigningConfig declares the protections a transaction signer claims.
// NonceHandling and MalleabilityProtection are optional; they are only
// assessed when supplied.
type SigningConfig struct {
	Name                   string `json:"name,omitempty" yaml:"name,omitempty"`
	Algorithm              string `json:"algorithm" yaml:"algorithm"`
	DeterministicNonce     bool   `json:"deterministic_nonce" yaml:"deterministic_nonce"`
	ConstantTimeOps        bool   `json:"constant_time_ops" yaml:"constant_time_ops"`
	NonceHandling          string `json:"nonce_handling,omitempty" yaml:"nonce_handling,omitempty"`
	MalleabilityProtection *bool  `json:"malleability_protection,omitempty" yaml:"malleability_protection,omitempty"`
}

// SigningResult lists the findings for a signing configuration.
type SigningResult struct {
	Name      string   `json:"name,omitempty"`
	Algorithm string   `json:"signing_algorithm"`
	Findings  []string `json:"findings"`
}

// AnalyzeTransactionSigning emits one finding per missing protection.
func AnalyzeTransactionSigning(cfg SigningConfig) SigningResult {
	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = "UNKNOWN"
	}

	handling := strings.ToLower(cfg.NonceHandling)
	reusedNonce := strings.Contains(handling, "static") || strings.Contains(handling, "reused")
	malleable := cfg.MalleabilityProtection != nil && !*cfg.MalleabilityProtection

	return SigningResult{
		Name:      cfg.Name,
		Algorithm: algorithm,
		Findings: scoring.Collect(
			scoring.When(!cfg.DeterministicNonce,
				"CRITICAL: Nonce reuse can leak private keys in ECDSA. Use deterministic nonce generation (RFC 6979)"),
			scoring.When(reusedNonce,
				fmt.Sprintf("CRITICAL: Nonce handling %q reuses nonces. Use RFC 6979 or fresh random nonces per signature", cfg.NonceHandling)),
			scoring.When(malleable,
				"MEDIUM: No signature malleability protection. Implement low-S signature normalization"),
			scoring.When(!cfg.ConstantTimeOps,
				"HIGH: No side-channel protection. Use constant-time signing implementations to prevent timing attacks"),
		),
	}
}
