package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	entryapp "github.com/khanhnv2901/crowdrisk/internal/application/entry"
	"github.com/khanhnv2901/crowdrisk/internal/domain/entry"
	sharedErrors "github.com/khanhnv2901/crowdrisk/internal/shared/errors"
)

func newEntryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage crowd-reported risk entries",
	}
	cmd.AddCommand(newEntryAddCmd())
	cmd.AddCommand(newEntryListCmd())
	cmd.AddCommand(newEntryShowCmd())
	cmd.AddCommand(newEntryStatsCmd())
	cmd.AddCommand(newEntryExportCmd())
	cmd.AddCommand(newEntryDeleteCmd())
	return cmd
}

func newEntryAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <cryptocurrency> <low|medium|high|critical> [reporter]",
		Short: "Record a risk assessment for a cryptocurrency",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx := getAppContext(cmd)

			level, err := entry.ParseRiskLevel(args[1])
			if err != nil {
				return err
			}

			reporter := appCtx.Config.Defaults.Reporter
			if len(args) == 3 {
				reporter = args[2]
			}

			flags := cmd.Flags()
			description, _ := flags.GetString("description")
			marketCap, _ := flags.GetFloat64("market-cap")
			volatility, _ := flags.GetFloat64("volatility")
			sentimentRaw, _ := flags.GetString("sentiment")
			dateRaw, _ := flags.GetString("date")

			sentiment, err := entry.ParseSentiment(sentimentRaw)
			if err != nil {
				return err
			}

			var reportDate time.Time
			if dateRaw != "" {
				reportDate, err = time.Parse(entry.DateLayout, dateRaw)
				if err != nil {
					return fmt.Errorf("%w: date must be YYYY-MM-DD: %q", sharedErrors.ErrInvalidInput, dateRaw)
				}
			}

			container, err := appCtx.services()
			if err != nil {
				return err
			}

			stored, err := container.EntryService.AddEntry(cmd.Context(), entry.Params{
				Cryptocurrency: args[0],
				RiskLevel:      level,
				Reporter:       reporter,
				ReportDate:     reportDate,
				Description:    description,
				MarketCap:      marketCap,
				Volatility:     volatility,
				Sentiment:      sentiment,
			})
			if err != nil {
				return err
			}
			appCtx.Logger.Infof("entry_id=%d cryptocurrency=%s risk_score=%.2f", stored.ID(), stored.Cryptocurrency(), stored.Score())

			if currentFormat(cmd) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), entryapp.ToView(stored))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added entry %d for %s (risk score %.2f)\n",
				colorSuccess("✓"), stored.ID(), stored.Cryptocurrency(), stored.Score())
			return nil
		},
	}

	cmd.Flags().String("description", "", "free-text description of the risk")
	cmd.Flags().Float64("market-cap", 0, "market capitalisation in USD")
	cmd.Flags().Float64("volatility", 0, "volatility index between 0 and 100")
	cmd.Flags().String("sentiment", "", "crowd sentiment: bullish, neutral or bearish")
	cmd.Flags().String("date", "", "report date (YYYY-MM-DD, default today)")
	return cmd
}

func newEntryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored risk entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := getAppContext(cmd).services()
			if err != nil {
				return err
			}

			var entries []*entry.Entry
			if name, _ := cmd.Flags().GetString("cryptocurrency"); name != "" {
				entries, err = container.EntryService.EntriesByCrypto(cmd.Context(), name)
			} else {
				entries, err = container.EntryService.ListEntries(cmd.Context())
			}
			if err != nil {
				return err
			}

			if currentFormat(cmd) == formatJSON {
				views := make([]entryapp.View, 0, len(entries))
				for _, e := range entries {
					views = append(views, entryapp.ToView(e))
				}
				return writeJSON(cmd.OutOrStdout(), views)
			}

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "No entries found.")
				return nil
			}
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCRYPTOCURRENCY\tRISK\tSCORE\tREPORTER\tDATE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\t%s\n",
					e.ID(), e.Cryptocurrency(), e.RiskLevel(), e.Score(), e.Reporter(),
					e.ReportDate().Format(entry.DateLayout))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().String("cryptocurrency", "", "only list entries for this cryptocurrency")
	return cmd
}

func newEntryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			container, err := getAppContext(cmd).services()
			if err != nil {
				return err
			}

			e, err := container.EntryService.GetEntry(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, sharedErrors.ErrEntryNotFound) {
					return &EntryNotFoundError{ID: id}
				}
				return err
			}

			if currentFormat(cmd) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), entryapp.ToView(e))
			}

			w := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Entry ID:\t%d\n", e.ID())
			fmt.Fprintf(tw, "Cryptocurrency:\t%s\n", e.Cryptocurrency())
			fmt.Fprintf(tw, "Risk Level:\t%s\n", e.RiskLevel())
			fmt.Fprintf(tw, "Risk Score:\t%.2f\n", e.Score())
			fmt.Fprintf(tw, "Reporter:\t%s\n", e.Reporter())
			fmt.Fprintf(tw, "Report Date:\t%s\n", e.ReportDate().Format(entry.DateLayout))
			fmt.Fprintf(tw, "Market Cap:\t%s\n", formatUSD(e.MarketCap()))
			fmt.Fprintf(tw, "Volatility Index:\t%g\n", e.Volatility())
			if s := e.Sentiment(); s != entry.SentimentUnspecified {
				fmt.Fprintf(tw, "Crowd Sentiment:\t%s\n", s)
			}
			if d := e.Description(); d != "" {
				fmt.Fprintf(tw, "Description:\t%s\n", d)
			}
			return tw.Flush()
		},
	}
}

func newEntryStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <cryptocurrency>",
		Short: "Summarize the entries reported for a cryptocurrency",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := getAppContext(cmd).services()
			if err != nil {
				return err
			}

			agg, err := container.EntryService.Stats(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if currentFormat(cmd) == formatJSON {
				return writeJSON(cmd.OutOrStdout(), agg)
			}

			w := cmd.OutOrStdout()
			if agg.Count == 0 {
				fmt.Fprintf(w, "No entries found for %s.\n", args[0])
				return nil
			}
			fmt.Fprintf(w, "Cryptocurrency: %s\n", agg.Cryptocurrency)
			fmt.Fprintf(w, "Entries: %d\n", agg.Count)
			fmt.Fprintf(w, "Average Risk Score: %.2f\n", agg.AverageScore)
			fmt.Fprintln(w, "Risk Levels:")
			tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
			for _, level := range entry.RiskLevels {
				fmt.Fprintf(tw, "  %s:\t%d\n", strings.ToUpper(string(level)), agg.LevelCounts[level])
			}
			return tw.Flush()
		},
	}
}

func newEntryExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export every entry to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx := getAppContext(cmd)
			container, err := appCtx.services()
			if err != nil {
				return err
			}

			target, count, err := container.EntryService.ExportJSON(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			appCtx.Logger.Infof("export=%s entries=%d", target, count)

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", count, target)
			return nil
		},
	}
}

func newEntryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}

			container, err := getAppContext(cmd).services()
			if err != nil {
				return err
			}

			if err := container.EntryService.DeleteEntry(cmd.Context(), id); err != nil {
				if errors.Is(err, sharedErrors.ErrEntryNotFound) {
					return &EntryNotFoundError{ID: id}
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %d\n", id)
			return nil
		},
	}
}

func parseEntryID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", sharedErrors.ErrInvalidEntryID, raw)
	}
	return id, nil
}
