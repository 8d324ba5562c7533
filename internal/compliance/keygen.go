package compliance

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/shared/validation"
)

// KeyGenParams describes how a key is generated. Only declared properties
// are inspected; the randomness source itself is never exercised.
type KeyGenParams struct {
	KeyType      string `json:"key_type" yaml:"key_type" validate:"required"`
	KeySize      *int   `json:"key_size" yaml:"key_size" validate:"required,gt=0"`
	RandomSource string `json:"random_source,omitempty" yaml:"random_source,omitempty"`
	CSPRNG       *bool  `json:"csprng" yaml:"csprng" validate:"required"`
}

// KeyGenResult is the outcome of ValidateKeyGeneration.
type KeyGenResult struct {
	KeyType         string   `json:"key_type"`
	KeySize         int      `json:"key_size"`
	Valid           bool     `json:"valid"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// ValidateKeyGeneration checks key generation parameters structurally.
// A missing field is a validation error with no result; a CSPRNG flag
// declared false is the only condition that marks the parameters invalid.
// Key sizes below the family minimum are reported as advice.
func ValidateKeyGeneration(params KeyGenParams) (KeyGenResult, error) {
	if err := validation.Struct(&params); err != nil {
		return KeyGenResult{}, fmt.Errorf("key generation parameters: %w", err)
	}

	keySize := *params.KeySize
	result := KeyGenResult{
		KeyType:         params.KeyType,
		KeySize:         keySize,
		Valid:           true,
		Issues:          []string{},
		Recommendations: []string{},
	}

	if !*params.CSPRNG {
		result.Valid = false
		source := params.RandomSource
		if source == "" {
			source = "declared source"
		}
		result.Issues = append(result.Issues,
			fmt.Sprintf("Randomness source (%s) is not a CSPRNG. Keys must be generated from a cryptographically secure RNG.", source))
	}

	family, ok := lookupFamily(params.KeyType)
	if !ok {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("No OWASP 2025 key length policy on record for %s.", params.KeyType))
		return result, nil
	}

	minimum := MinimumKeyLength(family)
	if keySize < minimum {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%s key size %d is below the OWASP 2025 minimum of %d bits.", params.KeyType, keySize, minimum))
	} else {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("%s-%d meets OWASP 2025 minimum requirements.", params.KeyType, keySize))
	}

	return result, nil
}
