package compliance

import (
	"strings"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

// Family groups algorithms that share a key length policy.
type Family string

const (
	FamilyAES      Family = "AES"
	FamilyChaCha20 Family = "CHACHA20"
	FamilyRSA      Family = "RSA"
	FamilyECC      Family = "ECC"
	FamilyEdwards  Family = "EDWARDS"
	FamilySHA2     Family = "SHA2"
	FamilySHA3     Family = "SHA3"
	FamilyPQC      Family = "PQC"
	FamilyLegacy   Family = "LEGACY"
)

// Kind is the broad primitive category, used for quantum classification.
type Kind string

const (
	KindSymmetric   Kind = "symmetric"
	KindAsymmetric  Kind = "asymmetric"
	KindHash        Kind = "hash"
	KindPostQuantum Kind = "post-quantum"
)

// Algorithm is one row of the catalogue.
type Algorithm struct {
	Name   string
	Family Family
	Kind   Kind
	// StrengthBits is the nominal key or output size implied by the name.
	// Zero means the name does not state one.
	StrengthBits int
	Deprecated   bool
	Severity     scoring.Level
	Replacement  string
}

// familyPolicy captures the OWASP 2025 key length rules of a family.
type familyPolicy struct {
	MinKeyLength int
	// DeprecatedBelow marks key lengths that are deprecated outright rather
	// than merely too short. Zero disables the rule.
	DeprecatedBelow int
	ShortKeyAdvice  string
}

// Minimum key lengths (bits)
const (
	MinSymmetricKeyLength = 256
	MinRSAKeyLength       = 4096
	MinECCKeyLength       = 384
	MinEdwardsKeyLength   = 256
	DeprecatedRSABelow    = 2048
)

var familyPolicies = map[Family]familyPolicy{
	FamilyAES: {
		MinKeyLength:   MinSymmetricKeyLength,
		ShortKeyAdvice: "AES key length should be at least 256 bits.",
	},
	FamilyChaCha20: {
		MinKeyLength:   MinSymmetricKeyLength,
		ShortKeyAdvice: "ChaCha20 requires a full 256-bit key.",
	},
	FamilyRSA: {
		MinKeyLength:    MinRSAKeyLength,
		DeprecatedBelow: DeprecatedRSABelow,
		ShortKeyAdvice:  "RSA keys must be at least 4096 bits. Consider ECC alternatives for better performance.",
	},
	FamilyECC: {
		MinKeyLength:   MinECCKeyLength,
		ShortKeyAdvice: "Curves below P-384 are marginal. Upgrade to P-384 or P-521.",
	},
	FamilyEdwards: {
		MinKeyLength:   MinEdwardsKeyLength,
		ShortKeyAdvice: "Edwards-curve keys must be at least 256 bits (Ed25519 or Ed448).",
	},
	FamilySHA2: {},
	FamilySHA3: {},
	FamilyPQC:  {},
}

var catalogue = buildCatalogue([]Algorithm{
	// Symmetric
	{Name: "AES", Family: FamilyAES, Kind: KindSymmetric},
	{Name: "AES-128-GCM", Family: FamilyAES, Kind: KindSymmetric, StrengthBits: 128},
	{Name: "AES-256", Family: FamilyAES, Kind: KindSymmetric, StrengthBits: 256},
	{Name: "AES-256-GCM", Family: FamilyAES, Kind: KindSymmetric, StrengthBits: 256},
	{Name: "ChaCha20-Poly1305", Family: FamilyChaCha20, Kind: KindSymmetric, StrengthBits: 256},
	{Name: "XChaCha20-Poly1305", Family: FamilyChaCha20, Kind: KindSymmetric, StrengthBits: 256},

	// Asymmetric
	{Name: "RSA", Family: FamilyRSA, Kind: KindAsymmetric},
	{Name: "RSA-2048", Family: FamilyRSA, Kind: KindAsymmetric, StrengthBits: 2048},
	{Name: "RSA-3072", Family: FamilyRSA, Kind: KindAsymmetric, StrengthBits: 3072},
	{Name: "RSA-4096", Family: FamilyRSA, Kind: KindAsymmetric, StrengthBits: 4096},
	{Name: "ECDSA", Family: FamilyECC, Kind: KindAsymmetric},
	{Name: "ECDSA-P256", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 256},
	{Name: "ECDSA-P384", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 384},
	{Name: "ECDSA-P521", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 521},
	{Name: "ECDSA-secp256k1", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 256},
	{Name: "ECDH-P256", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 256},
	{Name: "ECDH-P384", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 384},
	{Name: "ECDH-P521", Family: FamilyECC, Kind: KindAsymmetric, StrengthBits: 521},
	{Name: "Ed25519", Family: FamilyEdwards, Kind: KindAsymmetric, StrengthBits: 256},
	{Name: "Ed448", Family: FamilyEdwards, Kind: KindAsymmetric, StrengthBits: 448},
	{Name: "X25519", Family: FamilyEdwards, Kind: KindAsymmetric, StrengthBits: 256},

	// Hashes
	{Name: "SHA-256", Family: FamilySHA2, Kind: KindHash, StrengthBits: 256},
	{Name: "SHA-384", Family: FamilySHA2, Kind: KindHash, StrengthBits: 384},
	{Name: "SHA-512", Family: FamilySHA2, Kind: KindHash, StrengthBits: 512},
	{Name: "SHA3-256", Family: FamilySHA3, Kind: KindHash, StrengthBits: 256},
	{Name: "SHA3-384", Family: FamilySHA3, Kind: KindHash, StrengthBits: 384},
	{Name: "SHA3-512", Family: FamilySHA3, Kind: KindHash, StrengthBits: 512},
	{Name: "Keccak-256", Family: FamilySHA3, Kind: KindHash, StrengthBits: 256},

	// Post-quantum
	{Name: "ML-KEM-768", Family: FamilyPQC, Kind: KindPostQuantum},
	{Name: "ML-KEM-1024", Family: FamilyPQC, Kind: KindPostQuantum},
	{Name: "ML-DSA-65", Family: FamilyPQC, Kind: KindPostQuantum},
	{Name: "ML-DSA-87", Family: FamilyPQC, Kind: KindPostQuantum},
	{Name: "CRYSTALS-Kyber", Family: FamilyPQC, Kind: KindPostQuantum},
	{Name: "CRYSTALS-Dilithium", Family: FamilyPQC, Kind: KindPostQuantum},

	// Deprecated (OWASP 2025)
	{Name: "MD5", Family: FamilyLegacy, Kind: KindHash, StrengthBits: 128, Deprecated: true,
		Severity: scoring.LevelCritical, Replacement: "SHA-256 or SHA3-256"},
	{Name: "SHA-1", Family: FamilyLegacy, Kind: KindHash, StrengthBits: 160, Deprecated: true,
		Severity: scoring.LevelCritical, Replacement: "SHA-256 or SHA3-256"},
	{Name: "SHA1", Family: FamilyLegacy, Kind: KindHash, StrengthBits: 160, Deprecated: true,
		Severity: scoring.LevelCritical, Replacement: "SHA-256 or SHA3-256"},
	{Name: "DES", Family: FamilyLegacy, Kind: KindSymmetric, StrengthBits: 56, Deprecated: true,
		Severity: scoring.LevelCritical, Replacement: "AES-256-GCM or ChaCha20-Poly1305"},
	{Name: "RC4", Family: FamilyLegacy, Kind: KindSymmetric, StrengthBits: 128, Deprecated: true,
		Severity: scoring.LevelCritical, Replacement: "AES-256-GCM or ChaCha20-Poly1305"},
	{Name: "3DES", Family: FamilyLegacy, Kind: KindSymmetric, StrengthBits: 112, Deprecated: true,
		Severity: scoring.LevelHigh, Replacement: "AES-256-GCM or ChaCha20-Poly1305"},
	{Name: "RSA-1024", Family: FamilyLegacy, Kind: KindAsymmetric, StrengthBits: 1024, Deprecated: true,
		Severity: scoring.LevelCritical, Replacement: "RSA-4096 or ECDSA-P384"},
})

func buildCatalogue(rows []Algorithm) map[string]Algorithm {
	out := make(map[string]Algorithm, len(rows))
	for _, row := range rows {
		out[normalizeName(row.Name)] = row
	}
	return out
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// LookupAlgorithm returns the catalogue row for name.
func LookupAlgorithm(name string) (Algorithm, bool) {
	algo, ok := catalogue[normalizeName(name)]
	return algo, ok
}

// lookupFamily resolves either an algorithm name or a bare family name
// (as used by key generation requests) to its family.
func lookupFamily(name string) (Family, bool) {
	if algo, ok := LookupAlgorithm(name); ok {
		return algo.Family, true
	}
	family := Family(normalizeName(name))
	switch family {
	case "EC", "ECDH":
		family = FamilyECC
	case "CHACHA20-POLY1305":
		family = FamilyChaCha20
	}
	if _, ok := familyPolicies[family]; ok {
		return family, true
	}
	return "", false
}

// MinimumKeyLength returns the OWASP 2025 minimum for a family, or zero when
// the family carries no key length requirement.
func MinimumKeyLength(family Family) int {
	return familyPolicies[family].MinKeyLength
}
