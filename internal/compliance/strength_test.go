package compliance

import (
	"strings"
	"testing"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

func TestCheckAlgorithmStrength_AES256GCM(t *testing.T) {
	result := CheckAlgorithmStrength("AES-256-GCM", 256)

	if !result.Compliant {
		t.Fatal("expected AES-256-GCM with 256-bit key to be compliant")
	}
	if result.RiskLevel != scoring.LevelLow {
		t.Fatalf("expected LOW, got %s", result.RiskLevel)
	}
}

func TestCheckAlgorithmStrength_MD5(t *testing.T) {
	result := CheckAlgorithmStrength("MD5", 128)

	if result.Compliant {
		t.Fatal("MD5 must never be compliant")
	}
	if result.RiskLevel != scoring.LevelCritical {
		t.Fatalf("expected CRITICAL, got %s", result.RiskLevel)
	}
	if len(result.Recommendations) == 0 || !strings.Contains(result.Recommendations[0], "deprecated") {
		t.Fatalf("expected deprecation recommendation, got %v", result.Recommendations)
	}
}

func TestCheckAlgorithmStrength_CaseInsensitive(t *testing.T) {
	result := CheckAlgorithmStrength("aes-256-gcm", 256)
	if !result.Compliant || !result.Recognized {
		t.Fatalf("expected lower-case lookup to match, got %+v", result)
	}
}

func TestCheckAlgorithmStrength_DeprecatedNeverCompliant(t *testing.T) {
	deprecated := []string{"MD5", "SHA-1", "SHA1", "3DES", "RC4", "DES", "RSA-1024"}
	keyLengths := []int{0, 56, 128, 256, 4096, 8192}

	for _, name := range deprecated {
		for _, keyLength := range keyLengths {
			result := CheckAlgorithmStrength(name, keyLength)
			if result.Compliant {
				t.Errorf("%s/%d reported compliant", name, keyLength)
			}
			if result.RiskLevel != scoring.LevelCritical && result.RiskLevel != scoring.LevelHigh {
				t.Errorf("%s/%d expected CRITICAL or HIGH, got %s", name, keyLength, result.RiskLevel)
			}
		}
	}
}

func TestCheckAlgorithmStrength_DeprecatedSeverity(t *testing.T) {
	tests := map[string]scoring.Level{
		"MD5":   scoring.LevelCritical,
		"SHA-1": scoring.LevelCritical,
		"DES":   scoring.LevelCritical,
		"RC4":   scoring.LevelCritical,
		"3DES":  scoring.LevelHigh,
	}
	for name, want := range tests {
		if got := CheckAlgorithmStrength(name, 0).RiskLevel; got != want {
			t.Errorf("%s: expected %s, got %s", name, want, got)
		}
	}
}

func TestCheckAlgorithmStrength_RSABelow2048IsDeprecated(t *testing.T) {
	result := CheckAlgorithmStrength("RSA", 1024)
	if result.Compliant || result.RiskLevel != scoring.LevelCritical {
		t.Fatalf("expected non-compliant CRITICAL, got %+v", result)
	}
}

func TestCheckAlgorithmStrength_ApprovedFamilyMinimums(t *testing.T) {
	tests := []struct {
		name    string
		minimum int
	}{
		{"AES-256-GCM", 256},
		{"AES", 256},
		{"ChaCha20-Poly1305", 256},
		{"RSA", 4096},
		{"RSA-4096", 4096},
		{"ECDSA-P384", 384},
		{"ECDH-P521", 384},
	}

	for _, tt := range tests {
		for _, delta := range []int{-128, -1, 0, 1, 512} {
			keyLength := tt.minimum + delta
			result := CheckAlgorithmStrength(tt.name, keyLength)
			wantCompliant := keyLength >= tt.minimum
			if result.Compliant != wantCompliant {
				t.Errorf("%s/%d: compliant=%v, want %v", tt.name, keyLength, result.Compliant, wantCompliant)
			}
			if result.Compliant && result.RiskLevel != scoring.LevelLow {
				t.Errorf("%s/%d: compliant result must be LOW, got %s", tt.name, keyLength, result.RiskLevel)
			}
		}
	}
}

func TestCheckAlgorithmStrength_BelowMinimumIsHigh(t *testing.T) {
	tests := []struct {
		name      string
		keyLength int
	}{
		{"AES-128-GCM", 128},
		{"RSA", 2048},
		{"RSA-3072", 3072},
		{"ECDSA-P256", 256},
	}
	for _, tt := range tests {
		result := CheckAlgorithmStrength(tt.name, tt.keyLength)
		if result.Compliant || result.RiskLevel != scoring.LevelHigh {
			t.Errorf("%s/%d: expected non-compliant HIGH, got compliant=%v risk=%s",
				tt.name, tt.keyLength, result.Compliant, result.RiskLevel)
		}
	}
}

func TestCheckAlgorithmStrength_HashesNeedNoKey(t *testing.T) {
	for _, name := range []string{"SHA-256", "SHA-512", "SHA3-256", "Keccak-256"} {
		result := CheckAlgorithmStrength(name, 0)
		if !result.Compliant {
			t.Errorf("%s should be compliant without a key length", name)
		}
	}
}

func TestCheckAlgorithmStrength_Unrecognized(t *testing.T) {
	result := CheckAlgorithmStrength("Blowfish-Custom", 448)

	if result.Compliant {
		t.Fatal("unrecognized algorithm must not be compliant")
	}
	if result.Recognized {
		t.Fatal("expected Recognized=false")
	}
	if result.RiskLevel != scoring.LevelMedium {
		t.Fatalf("expected MEDIUM, got %s", result.RiskLevel)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("expected one generic recommendation, got %v", result.Recommendations)
	}
}

func TestCheckAlgorithmStrength_NamedSizeCapsKeyLength(t *testing.T) {
	tests := []struct {
		name      string
		keyLength int
	}{
		{"AES-128-GCM", 256},
		{"ECDSA-P256", 384},
		{"ECDSA-secp256k1", 521},
		{"RSA-2048", 4096},
		{"RSA-3072", 8192},
	}
	for _, tt := range tests {
		result := CheckAlgorithmStrength(tt.name, tt.keyLength)
		if result.Compliant || result.RiskLevel != scoring.LevelHigh {
			t.Errorf("%s/%d: expected non-compliant HIGH, got compliant=%v risk=%s",
				tt.name, tt.keyLength, result.Compliant, result.RiskLevel)
		}
		if len(result.Recommendations) == 0 || !strings.Contains(result.Recommendations[0], "fixes a") {
			t.Errorf("%s/%d: expected key size mismatch recommendation, got %v",
				tt.name, tt.keyLength, result.Recommendations)
		}
	}

	// Agreement with the quantum check on the same name.
	if CheckQuantumResistance("AES-128-GCM").QuantumResistant {
		t.Fatal("AES-128-GCM should not be quantum resistant")
	}
	if !CheckAlgorithmStrength("AES-256-GCM", 512).Compliant {
		t.Fatal("AES-256-GCM remains compliant when a larger key is claimed")
	}
}
