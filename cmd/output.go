package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/khanhnv2901/crowdrisk/internal/assessment"
	"github.com/khanhnv2901/crowdrisk/internal/shared/constants"
)

const (
	jsonPrefix = ""
	jsonIndent = "  "
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch outputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case formatText, "":
		return formatText, nil
	case formatJSON:
		return formatJSON, nil
	}
	return "", &UnknownFormatError{Format: s}
}

// currentFormat returns the active output format. initAppContext already
// rejected invalid values.
func currentFormat(cmd *cobra.Command) outputFormat {
	f, _ := parseOutputFormat(getAppContext(cmd).Config.OutputFormat)
	return f
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, jsonPrefix, jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func addFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "assessment document (YAML or JSON); built-in sample when omitted")
}

func loadDocument(cmd *cobra.Command) (assessment.Document, error) {
	path, _ := cmd.Flags().GetString("file")
	doc, err := assessment.LoadOrDefault(path)
	if err != nil {
		return assessment.Document{}, err
	}
	if path == "" {
		getAppContext(cmd).Logger.Debug("using built-in sample assessment")
	}
	return doc, nil
}

func rule(ch string) string {
	return strings.Repeat(ch, constants.ReportRuleWidth)
}

func printBanner(w io.Writer, title string, now time.Time) {
	fmt.Fprintln(w, rule("="))
	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "Generated: %s\n", now.UTC().Format(time.RFC3339))
	fmt.Fprintln(w, rule("="))
}

func printSection(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule("-"))
}

func printBullets(w io.Writer, indent, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	if heading != "" {
		fmt.Fprintf(w, "%s%s:\n", indent, heading)
		indent += "  "
	}
	for _, item := range items {
		fmt.Fprintf(w, "%s• %s\n", indent, item)
	}
}

// formatUSD renders v as whole dollars with thousands separators.
func formatUSD(v float64) string {
	s := humanize.Comma(int64(math.Round(v)))
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-$" + rest
	}
	return "$" + s
}
