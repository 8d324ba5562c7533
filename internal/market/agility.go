package market

import "github.com/khanhnv2901/crowdrisk/internal/scoring"

// Capability weights of the agility score (out of 10).
const (
	VersioningWeight = 3
	HybridWeight     = 2
	UpgradeWeight    = 3
	GovernanceWeight = 2
)

var agilityBoundaries = []scoring.Boundary{
	{Threshold: 8, Label: scoring.LevelHigh},
	{Threshold: 5, Label: scoring.LevelMedium},
	{Threshold: 0, Label: scoring.LevelLow},
}

// AgilityCapabilities are the process-level mechanisms that let a system
// replace its algorithms.
type AgilityCapabilities struct {
	AlgorithmVersioning bool `json:"algorithm_versioning" yaml:"algorithm_versioning"`
	HybridCryptoSupport bool `json:"hybrid_crypto_support" yaml:"hybrid_crypto_support"`
	UpgradeMechanism    bool `json:"upgrade_mechanism" yaml:"upgrade_mechanism"`
	GovernanceProcess   bool `json:"governance_process" yaml:"governance_process"`
}

// AgilityDescriptor lists the algorithms a system runs today, the ones it can
// fall back to, and the ones it plans to adopt. Capabilities is optional.
type AgilityDescriptor struct {
	Name         string               `json:"name" yaml:"name"`
	Current      []string             `json:"current,omitempty" yaml:"current,omitempty"`
	Fallback     []string             `json:"fallback,omitempty" yaml:"fallback,omitempty"`
	Future       []string             `json:"future,omitempty" yaml:"future,omitempty"`
	Capabilities *AgilityCapabilities `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// AgilityResult is the outcome of AnalyzeCryptographicAgility. AgilityLevel
// measures capability, so HIGH is the desirable grade.
type AgilityResult struct {
	System       string        `json:"system"`
	Current      []string      `json:"current"`
	AgilityLevel scoring.Level `json:"agility_level"`
	AgilityScore *float64      `json:"agility_score,omitempty"`
	Findings     []string      `json:"findings"`
}

// AnalyzeCryptographicAgility reports a finding for each missing algorithm
// list. When capabilities are declared they are scored 0-10 as well, and the
// weaker of the two grades wins.
func AnalyzeCryptographicAgility(desc AgilityDescriptor) AgilityResult {
	noFallback := len(desc.Fallback) == 0
	noFuture := len(desc.Future) == 0

	level := scoring.LevelHigh
	switch {
	case noFallback && noFuture:
		level = scoring.LevelLow
	case noFallback || noFuture:
		level = scoring.LevelMedium
	}

	current := desc.Current
	if current == nil {
		current = []string{}
	}

	result := AgilityResult{
		System:       orUnknown(desc.Name),
		Current:      current,
		AgilityLevel: level,
		Findings: scoring.Collect(
			scoring.When(noFallback,
				"No fallback algorithms declared: a broken primitive cannot be retired without disruption"),
			scoring.When(noFuture,
				"No future algorithms planned: no migration path toward post-quantum cryptography"),
		),
	}

	if caps := desc.Capabilities; caps != nil {
		score := scoring.ComputeScore(0, []scoring.Adjustment{
			scoring.Adjust(VersioningWeight, caps.AlgorithmVersioning),
			scoring.Adjust(HybridWeight, caps.HybridCryptoSupport),
			scoring.Adjust(UpgradeWeight, caps.UpgradeMechanism),
			scoring.Adjust(GovernanceWeight, caps.GovernanceProcess),
		}, scoring.TenPoint)
		result.AgilityScore = &score

		if capLevel := scoring.DeriveLabel(score, agilityBoundaries); capLevel.Rank() < result.AgilityLevel.Rank() {
			result.AgilityLevel = capLevel
		}

		result.Findings = append(result.Findings, scoring.Collect(
			scoring.When(!caps.AlgorithmVersioning,
				"No algorithm versioning: upgrades will be disruptive"),
			scoring.When(!caps.HybridCryptoSupport,
				"No hybrid classical plus post-quantum support: migration cannot be gradual"),
			scoring.When(!caps.UpgradeMechanism,
				"No protocol upgrade mechanism: the system may be locked into current algorithms"),
			scoring.When(!caps.GovernanceProcess,
				"No governance process: critical security updates may be delayed"),
		)...)
	}

	return result
}
