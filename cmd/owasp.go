package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/khanhnv2901/crowdrisk/internal/assessment"
	"github.com/khanhnv2901/crowdrisk/internal/compliance"
)

type complianceOutput struct {
	Report        compliance.ComplianceReport `json:"report"`
	KeyGeneration []compliance.KeyGenResult   `json:"key_generation,omitempty"`
	Standards     []compliance.Standard       `json:"standards"`
}

func newOwaspCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owasp",
		Short: "Check algorithms against OWASP 2025 cryptography guidance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out complianceOutput
				err error
			)

			if algorithm, _ := cmd.Flags().GetString("algorithm"); algorithm != "" {
				keyLength, _ := cmd.Flags().GetInt("key-length")
				out.Report = compliance.GenerateComplianceReport([]compliance.System{
					{Name: algorithm, Algorithm: algorithm, KeyLength: keyLength},
				})
				out.Standards = compliance.SupportedStandards()
			} else {
				doc, loadErr := loadDocument(cmd)
				if loadErr != nil {
					return loadErr
				}
				out, err = runCompliance(doc)
				if err != nil {
					return err
				}
			}

			if currentFormat(cmd) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			printBanner(w, "OWASP 2025 CRYPTOGRAPHY COMPLIANCE REPORT", out.Report.GeneratedAt)
			renderCompliance(w, out)
			return nil
		},
	}

	addFileFlag(cmd)
	cmd.Flags().String("algorithm", "", "check a single algorithm instead of a document")
	cmd.Flags().Int("key-length", 0, "key length in bits for --algorithm")
	return cmd
}

func runCompliance(doc assessment.Document) (complianceOutput, error) {
	out := complianceOutput{
		Report:    compliance.GenerateComplianceReport(doc.Systems),
		Standards: compliance.SupportedStandards(),
	}
	for i, params := range doc.KeyGeneration {
		result, err := compliance.ValidateKeyGeneration(params)
		if err != nil {
			return complianceOutput{}, fmt.Errorf("key_generation[%d]: %w", i, err)
		}
		out.KeyGeneration = append(out.KeyGeneration, result)
	}
	return out, nil
}

func renderCompliance(w io.Writer, out complianceOutput) {
	report := out.Report

	printSection(w, "ALGORITHM STRENGTH")
	for _, f := range report.Findings {
		fmt.Fprintf(w, "\nSystem: %s\n", f.System.Name)
		fmt.Fprintf(w, "  Algorithm: %s\n", f.System.Algorithm)
		if f.System.KeyLength > 0 {
			fmt.Fprintf(w, "  Key Length: %d bits\n", f.System.KeyLength)
		}
		fmt.Fprintf(w, "  Compliance: %s\n", passFail(f.Strength.Compliant))
		fmt.Fprintf(w, "  Risk Level: %s\n", formatRiskWithColor(f.Strength.RiskLevel))
		printBullets(w, "  ", "Recommendations", f.Strength.Recommendations)
		if f.Quantum.Notes != "" {
			fmt.Fprintf(w, "  Quantum: %s (%s)\n", f.Quantum.Vulnerability, f.Quantum.Notes)
		}
		printBullets(w, "  ", "Quantum Considerations", f.Quantum.Recommendations)
		printBullets(w, "  ", "References", f.Strength.References)
	}

	if len(out.KeyGeneration) > 0 {
		printSection(w, "KEY GENERATION")
		for _, kg := range out.KeyGeneration {
			fmt.Fprintf(w, "\nKey: %s-%d\n", kg.KeyType, kg.KeySize)
			fmt.Fprintf(w, "  Valid: %s\n", passFail(kg.Valid))
			printBullets(w, "  ", "Issues", kg.Issues)
			printBullets(w, "  ", "Recommendations", kg.Recommendations)
		}
	}

	printSection(w, "COMPLIANCE SUMMARY")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Report ID:\t%s\n", report.ReportID)
	fmt.Fprintf(tw, "Total Systems Analyzed:\t%d\n", report.TotalSystems)
	fmt.Fprintf(tw, "Compliant Systems:\t%d\n", report.CompliantSystems)
	fmt.Fprintf(tw, "Failed Systems:\t%d\n", report.FailedSystems)
	fmt.Fprintf(tw, "Overall Risk Level:\t%s\n", formatRiskWithColor(report.OverallRisk))
	_ = tw.Flush()

	fmt.Fprintln(w, "\nIssue Breakdown:")
	tw = tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "  CRITICAL:\t%d\n", report.Issues.Critical)
	fmt.Fprintf(tw, "  HIGH:\t%d\n", report.Issues.High)
	fmt.Fprintf(tw, "  MEDIUM:\t%d\n", report.Issues.Medium)
	fmt.Fprintf(tw, "  LOW:\t%d\n", report.Issues.Low)
	_ = tw.Flush()

	if len(out.Standards) > 0 {
		fmt.Fprintln(w, "\nReference Standards:")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, std := range out.Standards {
			fmt.Fprintf(tw, "  %s\t%s\n", std.ID, std.Name)
		}
		_ = tw.Flush()
	}
}
