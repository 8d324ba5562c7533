package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

type fullOutput struct {
	Compliance complianceOutput `json:"compliance"`
	Crypto     cryptoOutput     `json:"crypto"`
	Market     marketOutput     `json:"market"`
}

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every analysis (default when no command is given)",
		Args:  cobra.NoArgs,
		RunE:  runAllAnalyses,
	}
	addFileFlag(cmd)
	return cmd
}

func runAllAnalyses(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(cmd)
	if err != nil {
		return err
	}

	var out fullOutput
	if out.Compliance, err = runCompliance(doc); err != nil {
		return err
	}
	if out.Crypto, err = runCryptoRisk(doc); err != nil {
		return err
	}
	if out.Market, err = runMarketAnalysis(doc); err != nil {
		return err
	}

	if currentFormat(cmd) == formatJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	w := cmd.OutOrStdout()
	printBanner(w, "CRYPTO CROWD RISK ASSESSMENT", time.Now())
	renderCompliance(w, out.Compliance)
	renderCryptoRisk(w, out.Crypto)
	renderMarketAnalysis(w, out.Market)
	return nil
}
