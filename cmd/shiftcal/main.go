// Package main provides the shiftcal CLI: extract duty-roster schedules from
// PDF files into calendar-event drafts.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kintai-tools/shiftcal/pkg/calendar"
	"github.com/kintai-tools/shiftcal/pkg/export"
	"github.com/kintai-tools/shiftcal/pkg/name"
	"github.com/kintai-tools/shiftcal/pkg/pdf"
	"github.com/kintai-tools/shiftcal/pkg/schedule"
)

var (
	outputPath string
	asXLSX     bool
	people     []string
	allPeople  bool
	tolerance  float64
	timeZone   string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftcal",
		Short: "Extract monthly duty rosters from PDF into calendar-event drafts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	extractCmd := &cobra.Command{
		Use:   "extract [schedule.pdf]",
		Short: "Extract calendar-event drafts for one or more staff members",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	extractCmd.Flags().StringArrayVarP(&people, "name", "n", nil, "Full name to extract (repeatable)")
	extractCmd.Flags().BoolVar(&allPeople, "all", false, "Extract every name found in the document")
	extractCmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Date/mark alignment tolerance in points")
	extractCmd.Flags().StringVar(&timeZone, "timezone", "", "Time zone identifier for drafts")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&asXLSX, "xlsx", false, "Write an Excel workbook instead of JSON")

	namesCmd := &cobra.Command{
		Use:   "names [schedule.pdf]",
		Short: "List candidate staff names found in the document",
		Args:  cobra.ExactArgs(1),
		RunE:  runNames,
	}

	monthCmd := &cobra.Command{
		Use:   "month [schedule.pdf]",
		Short: "Print the schedule year and month",
		Args:  cobra.ExactArgs(1),
		RunE:  runMonth,
	}

	rootCmd.AddCommand(extractCmd, namesCmd, monthCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// personOutput is the JSON shape of one person's extraction in the report.
type personOutput struct {
	Name     string                `json:"name"`
	Events   []calendar.EventDraft `json:"events"`
	Warnings []string              `json:"warnings,omitempty"`
	Error    string                `json:"error,omitempty"`
}

func runExtract(cmd *cobra.Command, args []string) error {
	doc, err := pdf.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	cfg := schedule.DefaultConfig()
	if tolerance > 0 {
		cfg.Tolerance = tolerance
	}
	if timeZone != "" {
		cfg.TimeZone = timeZone
	}

	targets, err := resolveTargets(doc)
	if err != nil {
		return err
	}

	results := schedule.NewExtractor(doc, cfg).ExtractAll(targets)

	if asXLSX {
		if outputPath == "" {
			return fmt.Errorf("--xlsx requires --output")
		}
		return export.WriteXLSX(outputPath, results)
	}

	report := make([]personOutput, 0, len(results))
	for _, r := range results {
		out := personOutput{Name: r.Person.Full, Events: r.Drafts}
		for _, w := range r.Warnings {
			out.Warnings = append(out.Warnings, w.String())
		}
		if r.Err != nil {
			out.Error = r.Err.Error()
		}
		report = append(report, out)
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing report: %w", err)
	}
	if outputPath != "" {
		return os.WriteFile(outputPath, data, 0644)
	}
	fmt.Println(string(data))
	return nil
}

// resolveTargets turns the --name/--all flags into the extraction list.
func resolveTargets(doc *pdf.Document) ([]name.PersonName, error) {
	if allPeople {
		candidates := name.ExtractCandidates(documentText(doc))
		if len(candidates) == 0 {
			return nil, fmt.Errorf("no candidate names found in document")
		}
		return candidates, nil
	}
	if len(people) == 0 {
		return nil, fmt.Errorf("either --name or --all is required")
	}
	targets := make([]name.PersonName, 0, len(people))
	for _, s := range people {
		p, ok := name.Parse(s)
		if !ok {
			p = name.Literal(s)
		}
		targets = append(targets, p)
	}
	return targets, nil
}

func runNames(cmd *cobra.Command, args []string) error {
	doc, err := pdf.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	for _, p := range name.ExtractCandidates(documentText(doc)) {
		fmt.Println(p.Full)
	}
	return nil
}

func runMonth(cmd *cobra.Command, args []string) error {
	doc, err := pdf.Open(args[0])
	if err != nil {
		return err
	}
	defer doc.Close()

	period, err := schedule.ReadPeriod(doc, schedule.DefaultConfig().HeaderRegion)
	if err != nil {
		return err
	}
	fmt.Println(period.String())
	return nil
}

// documentText joins the word text of every page, preserving name-internal
// spaces only where word segmentation kept them together.
func documentText(doc *pdf.Document) string {
	var b strings.Builder
	for page := 1; page <= doc.PageCount(); page++ {
		words, err := doc.Words(page)
		if err != nil {
			continue
		}
		for _, w := range words {
			b.WriteString(w.Text)
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
