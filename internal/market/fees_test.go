package market

import (
	"strings"
	"testing"
)

func TestAnalyzeFeeMarketSecurity_Ratio(t *testing.T) {
	tests := []struct {
		name    string
		fee     float64
		txValue float64
		want    string
	}{
		{name: "low ratio", fee: 0.005, txValue: 1000, want: "Low fee-to-value"},
		{name: "high ratio", fee: 5, txValue: 100, want: "High fee-to-value"},
		{name: "balanced", fee: 5.5, txValue: 1500, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := AnalyzeFeeMarketSecurity(FeeData{Network: "n", AvgFeeUSD: tt.fee, AvgTxValueUSD: tt.txValue})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.FeeToValueRatio == nil {
				t.Fatal("expected ratio")
			}
			if tt.want == "" {
				if len(result.Findings) != 0 {
					t.Fatalf("expected no findings, got %v", result.Findings)
				}
				return
			}
			if len(result.Findings) != 1 || !strings.HasPrefix(result.Findings[0], tt.want) {
				t.Fatalf("expected single %q finding, got %v", tt.want, result.Findings)
			}
		})
	}
}

func TestAnalyzeFeeMarketSecurity_ZeroTxValue(t *testing.T) {
	result, err := AnalyzeFeeMarketSecurity(FeeData{AvgFeeUSD: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FeeToValueRatio != nil {
		t.Fatal("ratio must be omitted")
	}
	if len(result.Notes) != 1 || result.Notes[0] != NoTxValueNote {
		t.Fatalf("expected insufficient data note, got %v", result.Notes)
	}
	if len(result.Findings) != 0 {
		t.Fatalf("expected no findings, got %v", result.Findings)
	}
}

func TestAnalyzeFeeMarketSecurity_Congestion(t *testing.T) {
	tests := []struct {
		fee  float64
		want CongestionLevel
	}{
		{fee: 0.001, want: CongestionLow},
		{fee: 0.01, want: CongestionModerate},
		{fee: 0.5, want: CongestionModerate},
		{fee: 5.5, want: CongestionHigh},
		{fee: 10, want: CongestionCritical},
	}

	for _, tt := range tests {
		result, err := AnalyzeFeeMarketSecurity(FeeData{AvgFeeUSD: tt.fee, AvgTxValueUSD: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CongestionLevel != tt.want {
			t.Errorf("fee %v: CongestionLevel = %s, want %s", tt.fee, result.CongestionLevel, tt.want)
		}
		if len(result.Implications) == 0 {
			t.Errorf("fee %v: expected implications", tt.fee)
		}
	}
}

func TestAnalyzeFeeMarketSecurity_NegativeFee(t *testing.T) {
	if _, err := AnalyzeFeeMarketSecurity(FeeData{AvgFeeUSD: -1}); err == nil {
		t.Fatal("expected validation error")
	}
}
