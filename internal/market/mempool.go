package market

import (
	"fmt"

	"github.com/khanhnv2901/crowdrisk/internal/scoring"
	"github.com/khanhnv2901/crowdrisk/internal/shared/validation"
)

// Mempool thresholds.
const (
	PendingTxThreshold = 50_000
	MempoolSizeLimitMB = 100
	MEVActivityLimit   = 10
)

// MempoolData is a snapshot of a network's pending transaction pool.
type MempoolData struct {
	Network        string  `json:"network" yaml:"network"`
	PendingTxCount int64   `json:"pending_tx_count" yaml:"pending_tx_count" validate:"gte=0"`
	SizeMB         float64 `json:"size_mb" yaml:"size_mb" validate:"gte=0"`
	MEVProtection  bool    `json:"mev_protection" yaml:"mev_protection"`
	RBFEnabled     bool    `json:"rbf_enabled" yaml:"rbf_enabled"`
	// MEVOpportunities counts observed extraction opportunities; zero when unknown.
	MEVOpportunities int64 `json:"mev_opportunities,omitempty" yaml:"mev_opportunities,omitempty" validate:"gte=0"`
}

// MempoolResult is the outcome of AnalyzeMempoolSecurity.
type MempoolResult struct {
	Network         string   `json:"network"`
	PendingTxCount  int64    `json:"pending_tx_count"`
	SizeMB          float64  `json:"mempool_size_mb"`
	Findings        []string `json:"findings"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeMempoolSecurity checks each mempool condition independently.
func AnalyzeMempoolSecurity(mempool MempoolData) (MempoolResult, error) {
	if err := validation.Struct(&mempool); err != nil {
		return MempoolResult{}, fmt.Errorf("mempool data: %w", err)
	}

	backlog := mempool.PendingTxCount > PendingTxThreshold
	bloated := mempool.SizeMB > MempoolSizeLimitMB
	mevActive := mempool.MEVOpportunities > MEVActivityLimit

	return MempoolResult{
		Network:        orUnknown(mempool.Network),
		PendingTxCount: mempool.PendingTxCount,
		SizeMB:         mempool.SizeMB,
		Findings: scoring.Collect(
			scoring.When(!mempool.MEVProtection,
				"No MEV protection declared: pending transactions are exposed to front-running and sandwich attacks"),
			scoring.When(backlog,
				"Pending transaction backlog (>50000) may indicate spam or a denial-of-service attempt"),
			scoring.When(bloated,
				"Large mempool (>100MB) may indicate spam or DoS attack"),
			scoring.When(mevActive,
				"High MEV (Maximal Extractable Value) activity detected"),
		),
		Recommendations: scoring.Collect(
			scoring.When(!mempool.MEVProtection || mevActive,
				"Consider using private mempools or MEV-protection services"),
			scoring.When(backlog || bloated,
				"Implement dynamic fee estimation to prioritize transactions"),
			scoring.When(!mempool.RBFEnabled,
				"Enable RBF (Replace-By-Fee) for better fee management"),
		),
	}, nil
}
