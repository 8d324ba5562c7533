package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/crowdrisk/internal/assessment"
	"github.com/khanhnv2901/crowdrisk/internal/market"
)

type marketOutput struct {
	Networks []market.AttackCostResult `json:"networks"`
	Fees     []market.FeeMarketResult  `json:"fees"`
	Mempools []market.MempoolResult    `json:"mempools"`
	Agility  []market.AgilityResult    `json:"agility"`
}

func newMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Analyze attack economics, fee markets, mempools and crypto agility",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd)
			if err != nil {
				return err
			}
			out, err := runMarketAnalysis(doc)
			if err != nil {
				return err
			}

			if currentFormat(cmd) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			printBanner(w, "CRYPTOCURRENCY MARKET SECURITY CONDITIONS REPORT", time.Now())
			renderMarketAnalysis(w, out)
			return nil
		},
	}
	addFileFlag(cmd)
	return cmd
}

func runMarketAnalysis(doc assessment.Document) (marketOutput, error) {
	out := marketOutput{
		Networks: []market.AttackCostResult{},
		Fees:     []market.FeeMarketResult{},
		Mempools: []market.MempoolResult{},
		Agility:  []market.AgilityResult{},
	}

	for i, n := range doc.Networks {
		result, err := market.AnalyzeNetworkSecurityEconomics(n)
		if err != nil {
			return marketOutput{}, fmt.Errorf("networks[%d]: %w", i, err)
		}
		out.Networks = append(out.Networks, result)
	}
	for i, f := range doc.Fees {
		result, err := market.AnalyzeFeeMarketSecurity(f)
		if err != nil {
			return marketOutput{}, fmt.Errorf("fees[%d]: %w", i, err)
		}
		out.Fees = append(out.Fees, result)
	}
	for i, m := range doc.Mempools {
		result, err := market.AnalyzeMempoolSecurity(m)
		if err != nil {
			return marketOutput{}, fmt.Errorf("mempools[%d]: %w", i, err)
		}
		out.Mempools = append(out.Mempools, result)
	}
	for _, a := range doc.Agility {
		out.Agility = append(out.Agility, market.AnalyzeCryptographicAgility(a))
	}

	return out, nil
}

func renderMarketAnalysis(w io.Writer, out marketOutput) {
	if len(out.Networks) > 0 {
		printSection(w, "NETWORK SECURITY ECONOMICS")
		for _, r := range out.Networks {
			a := r.AttackCostAnalysis
			fmt.Fprintf(w, "\nNetwork: %s\n", r.Network)
			if a.HourlyCost > 0 {
				fmt.Fprintf(w, "  Attack Cost (1h): %s\n", formatUSD(a.HourlyCost))
				fmt.Fprintf(w, "  Attack Cost (24h): %s\n", formatUSD(a.DailyCost))
			}
			if a.CostToValueRatio != nil {
				fmt.Fprintf(w, "  Cost to Value Ratio: %.6f\n", *a.CostToValueRatio)
			}
			if a.StakingRatio != nil {
				fmt.Fprintf(w, "  Staking Ratio: %.2f%%\n", *a.StakingRatio*100)
			}
			printBullets(w, "  ", "", r.SecurityRecommendations)
			printBullets(w, "  ", "Notes", r.Notes)
		}
	}

	if len(out.Fees) > 0 {
		printSection(w, "FEE MARKET ANALYSIS")
		for _, r := range out.Fees {
			fmt.Fprintf(w, "\nNetwork: %s\n", r.Network)
			fmt.Fprintf(w, "  Congestion Level: %s\n", r.CongestionLevel)
			fmt.Fprintf(w, "  Average Fee: $%.2f\n", r.CurrentFeeUSD)
			if r.FeeToValueRatio != nil {
				fmt.Fprintf(w, "  Fee to Value Ratio: %.6f\n", *r.FeeToValueRatio)
			}
			printBullets(w, "  ", "", r.Findings)
			printBullets(w, "  ", "", r.Implications)
			printBullets(w, "  ", "Notes", r.Notes)
		}
	}

	if len(out.Mempools) > 0 {
		printSection(w, "MEMPOOL SECURITY")
		for _, r := range out.Mempools {
			fmt.Fprintf(w, "\nNetwork: %s\n", r.Network)
			fmt.Fprintf(w, "  Pending Transactions: %d\n", r.PendingTxCount)
			fmt.Fprintf(w, "  Mempool Size: %g MB\n", r.SizeMB)
			printBullets(w, "  ", "Findings", r.Findings)
			printBullets(w, "  ", "Recommendations", r.Recommendations)
		}
	}

	if len(out.Agility) > 0 {
		printSection(w, "CRYPTOGRAPHIC AGILITY ASSESSMENT")
		for _, r := range out.Agility {
			fmt.Fprintf(w, "\nSystem: %s\n", r.System)
			fmt.Fprintf(w, "  Agility Level: %s\n", formatCapabilityWithColor(r.AgilityLevel))
			if r.AgilityScore != nil {
				fmt.Fprintf(w, "  Agility Score: %g/10\n", *r.AgilityScore)
			}
			if len(r.Findings) == 0 {
				fmt.Fprintf(w, "  %s\n", colorSuccess("Fallback and future algorithms declared"))
			}
			printBullets(w, "  ", "Findings", r.Findings)
		}
	}
}
