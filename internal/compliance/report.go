package compliance

import (
	"time"

	"github.com/google/uuid"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
)

// System is one cryptographic deployment to assess.
type System struct {
	Name      string `json:"name" yaml:"name"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	KeyLength int    `json:"key_length,omitempty" yaml:"key_length,omitempty"`
}

// SystemFinding pairs a system with both checks run against it.
type SystemFinding struct {
	System   System         `json:"system"`
	Strength StrengthResult `json:"strength"`
	Quantum  QuantumResult  `json:"quantum"`
}

// IssueCounts tallies strength results by risk level.
type IssueCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func (c *IssueCounts) add(level scoring.Level) {
	switch level {
	case scoring.LevelCritical:
		c.Critical++
	case scoring.LevelHigh:
		c.High++
	case scoring.LevelMedium:
		c.Medium++
	case scoring.LevelLow:
		c.Low++
	}
}

// ComplianceReport aggregates the checks for a list of systems.
type ComplianceReport struct {
	ReportID         string          `json:"report_id"`
	GeneratedAt      time.Time       `json:"generated_at"`
	TotalSystems     int             `json:"total_systems"`
	CompliantSystems int             `json:"compliant_systems"`
	FailedSystems    int             `json:"failed_systems"`
	Issues           IssueCounts     `json:"issues"`
	OverallRisk      scoring.Level   `json:"overall_risk"`
	Findings         []SystemFinding `json:"findings"`
}

// GenerateComplianceReport runs the strength and quantum checks over every
// system. The overall risk is the highest strength risk observed, LOW when
// there is nothing to assess.
func GenerateComplianceReport(systems []System) ComplianceReport {
	report := ComplianceReport{
		ReportID:     uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		TotalSystems: len(systems),
		Findings:     make([]SystemFinding, 0, len(systems)),
	}

	levels := make([]scoring.Level, 0, len(systems))
	for _, system := range systems {
		strength := CheckAlgorithmStrength(system.Algorithm, system.KeyLength)
		quantum := CheckQuantumResistance(system.Algorithm)

		report.Findings = append(report.Findings, SystemFinding{
			System:   system,
			Strength: strength,
			Quantum:  quantum,
		})

		if strength.Compliant {
			report.CompliantSystems++
		} else {
			report.FailedSystems++
		}
		report.Issues.add(strength.RiskLevel)
		levels = append(levels, strength.RiskLevel)
	}

	report.OverallRisk = scoring.Highest(levels...)
	return report
}
