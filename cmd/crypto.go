package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/crowdrisk/internal/assessment"
	"github.com/khanhnv2901/crowdrisk/internal/cryptorisk"
)

type cryptoOutput struct {
	Wallets   []cryptorisk.WalletRiskResult `json:"wallets"`
	Protocols []cryptorisk.ProtocolResult   `json:"protocols"`
	Signing   []cryptorisk.SigningResult    `json:"signing"`
	Crowd     []cryptorisk.CrowdRiskResult  `json:"crowd_risk"`
}

func newCryptoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crypto",
		Short: "Analyze wallet, protocol, signing and crowd risk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd)
			if err != nil {
				return err
			}
			out, err := runCryptoRisk(doc)
			if err != nil {
				return err
			}

			if currentFormat(cmd) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			printBanner(w, "CRYPTOCURRENCY SECURITY RISK REPORT", time.Now())
			renderCryptoRisk(w, out)
			return nil
		},
	}
	addFileFlag(cmd)
	return cmd
}

func runCryptoRisk(doc assessment.Document) (cryptoOutput, error) {
	out := cryptoOutput{
		Wallets:   []cryptorisk.WalletRiskResult{},
		Protocols: []cryptorisk.ProtocolResult{},
		Signing:   []cryptorisk.SigningResult{},
		Crowd:     []cryptorisk.CrowdRiskResult{},
	}

	for i, cfg := range doc.Wallets {
		result, err := cryptorisk.AnalyzeWalletSecurity(cfg)
		if err != nil {
			return cryptoOutput{}, fmt.Errorf("wallets[%d]: %w", i, err)
		}
		out.Wallets = append(out.Wallets, result)
	}
	for _, name := range doc.Protocols {
		out.Protocols = append(out.Protocols, cryptorisk.AnalyzeBlockchainProtocol(name))
	}
	for _, cfg := range doc.Signing {
		out.Signing = append(out.Signing, cryptorisk.AnalyzeTransactionSigning(cfg))
	}
	for i, datum := range doc.MarketData {
		result, err := cryptorisk.CalculateCrowdRiskScore(datum)
		if err != nil {
			return cryptoOutput{}, fmt.Errorf("market_data[%d]: %w", i, err)
		}
		out.Crowd = append(out.Crowd, result)
	}

	return out, nil
}

func renderCryptoRisk(w io.Writer, out cryptoOutput) {
	if len(out.Wallets) > 0 {
		printSection(w, "WALLET SECURITY ANALYSIS")
		for _, r := range out.Wallets {
			fmt.Fprintf(w, "\nWallet: %s\n", orDash(r.Wallet))
			fmt.Fprintf(w, "  Type: %s\n", r.WalletType)
			fmt.Fprintf(w, "  Risk Score: %g/10\n", r.RiskScore)
			fmt.Fprintf(w, "  Overall Risk: %s\n", formatRiskWithColor(r.OverallRisk))
			printBullets(w, "  ", "Identified Risks", r.Risks)
			printBullets(w, "  ", "Recommendations", r.Recommendations)
		}
	}

	if len(out.Protocols) > 0 {
		printSection(w, "BLOCKCHAIN PROTOCOL ANALYSIS")
		for _, r := range out.Protocols {
			fmt.Fprintf(w, "\nProtocol: %s\n", r.Protocol)
			if !r.Recognized || r.Algorithms == nil {
				fmt.Fprintf(w, "  %s\n", colorWarn("Unrecognized protocol: no profile available"))
				continue
			}
			fmt.Fprintln(w, "  Algorithms Used:")
			fmt.Fprintf(w, "    signature: %s\n", r.Algorithms.Signature)
			fmt.Fprintf(w, "    hash: %s\n", r.Algorithms.Hash)
			if r.Algorithms.Address != "" {
				fmt.Fprintf(w, "    address: %s\n", r.Algorithms.Address)
			}
			printBullets(w, "  ", "Known Vulnerabilities", r.Vulnerabilities)
			printBullets(w, "  ", "Recommendations", r.Recommendations)
		}
	}

	if len(out.Signing) > 0 {
		printSection(w, "TRANSACTION SIGNING ANALYSIS")
		for _, r := range out.Signing {
			fmt.Fprintf(w, "\nConfiguration: %s\n", orDash(r.Name))
			fmt.Fprintf(w, "  Algorithm: %s\n", r.Algorithm)
			if len(r.Findings) == 0 {
				fmt.Fprintf(w, "  %s\n", colorSuccess("No signing weaknesses declared"))
			}
			printBullets(w, "  ", "Findings", r.Findings)
		}
	}

	if len(out.Crowd) > 0 {
		printSection(w, "CROWD RISK SCORING")
		for _, r := range out.Crowd {
			fmt.Fprintf(w, "\nAsset: %s\n", r.Asset)
			fmt.Fprintf(w, "  Market Cap: %s\n", formatUSD(r.MarketCapUSD))
			fmt.Fprintf(w, "  Daily Volume: %s\n", formatUSD(r.DailyVolumeUSD))
			if r.VolumePerAddress != nil {
				fmt.Fprintf(w, "  Volume per Address: %s\n", formatUSD(*r.VolumePerAddress))
			}
			fmt.Fprintf(w, "  Crowd Risk Score: %g/10 (%s)\n", r.CrowdRiskScore, formatRiskWithColor(r.RiskLevel))
			printBullets(w, "  ", "Risk Factors", r.RiskFactors)
			printBullets(w, "  ", "Recommendations", r.Recommendations)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
