package market

import (
	"testing"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

func TestAnalyzeCryptographicAgility(t *testing.T) {
	tests := []struct {
		name     string
		desc     AgilityDescriptor
		level    scoring.Level
		findings int
	}{
		{
			name:     "modern",
			desc:     AgilityDescriptor{Name: "Modern", Current: []string{"ECDSA-P384"}, Fallback: []string{"Ed25519"}, Future: []string{"ML-DSA-65"}},
			level:    scoring.LevelHigh,
			findings: 0,
		},
		{
			name:     "no future",
			desc:     AgilityDescriptor{Name: "Partial", Fallback: []string{"Ed25519"}},
			level:    scoring.LevelMedium,
			findings: 1,
		},
		{
			name:     "no fallback",
			desc:     AgilityDescriptor{Name: "Partial", Future: []string{"ML-KEM-768"}},
			level:    scoring.LevelMedium,
			findings: 1,
		},
		{
			name:     "legacy",
			desc:     AgilityDescriptor{Name: "Legacy", Current: []string{"RSA-2048"}},
			level:    scoring.LevelLow,
			findings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeCryptographicAgility(tt.desc)
			if result.AgilityLevel != tt.level {
				t.Errorf("AgilityLevel = %s, want %s", result.AgilityLevel, tt.level)
			}
			if len(result.Findings) != tt.findings {
				t.Errorf("expected %d findings, got %v", tt.findings, result.Findings)
			}
		})
	}
}

func TestAnalyzeCryptographicAgility_EmptyDescriptor(t *testing.T) {
	result := AnalyzeCryptographicAgility(AgilityDescriptor{})
	if result.System != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN system, got %s", result.System)
	}
	if result.Current == nil {
		t.Fatal("current must be an empty list")
	}
}

func TestAnalyzeCryptographicAgility_Capabilities(t *testing.T) {
	lists := AgilityDescriptor{Fallback: []string{"Ed25519"}, Future: []string{"ML-DSA-65"}}

	tests := []struct {
		name     string
		caps     AgilityCapabilities
		score    float64
		level    scoring.Level
		findings int
	}{
		{
			name:  "all capabilities",
			caps:  AgilityCapabilities{AlgorithmVersioning: true, HybridCryptoSupport: true, UpgradeMechanism: true, GovernanceProcess: true},
			score: 10,
			level: scoring.LevelHigh,
		},
		{
			name:     "versioning and upgrade",
			caps:     AgilityCapabilities{AlgorithmVersioning: true, UpgradeMechanism: true},
			score:    6,
			level:    scoring.LevelMedium,
			findings: 2,
		},
		{
			name:     "governance only",
			caps:     AgilityCapabilities{GovernanceProcess: true},
			score:    2,
			level:    scoring.LevelLow,
			findings: 3,
		},
		{
			name:     "none",
			score:    0,
			level:    scoring.LevelLow,
			findings: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := lists
			caps := tt.caps
			desc.Capabilities = &caps

			result := AnalyzeCryptographicAgility(desc)
			if result.AgilityScore == nil || *result.AgilityScore != tt.score {
				t.Fatalf("AgilityScore = %v, want %v", result.AgilityScore, tt.score)
			}
			if result.AgilityLevel != tt.level {
				t.Errorf("AgilityLevel = %s, want %s", result.AgilityLevel, tt.level)
			}
			if len(result.Findings) != tt.findings {
				t.Errorf("expected %d findings, got %v", tt.findings, result.Findings)
			}
		})
	}
}

func TestAnalyzeCryptographicAgility_WeakerGradeWins(t *testing.T) {
	desc := AgilityDescriptor{
		Name:         "Lists missing",
		Capabilities: &AgilityCapabilities{AlgorithmVersioning: true, HybridCryptoSupport: true, UpgradeMechanism: true, GovernanceProcess: true},
	}

	result := AnalyzeCryptographicAgility(desc)
	if result.AgilityLevel != scoring.LevelLow {
		t.Fatalf("expected list-based LOW to win over capability HIGH, got %s", result.AgilityLevel)
	}

	if AnalyzeCryptographicAgility(AgilityDescriptor{}).AgilityScore != nil {
		t.Fatal("agility score must be omitted without capabilities")
	}
}
