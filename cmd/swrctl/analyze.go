package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RMahshie/swrscope/internal/processing"
	"github.com/RMahshie/swrscope/internal/repository/filestore"
	"github.com/RMahshie/swrscope/internal/swr"
	"github.com/RMahshie/swrscope/pkg/models"
)

type analyzeOptions struct {
	asJSON bool
	buffer float64
	bands  []string
	shifts []string
}

func newAnalyzeCmd() *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Summarise SWR per band for a Touchstone file",
		Long: `Parse a Touchstone file and print the minimum, maximum and average SWR of
every band the sweep covers.

Use --shift band=percent to see how lengthening (positive) or shortening
(negative) the element would move the band's SWR curve.`,
		Example: `  swrctl analyze dipole.s1p
  swrctl analyze --band 20m --band 40m --shift 20m=2.5 dipole.s1p`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the full report as JSON")
	cmd.Flags().Float64Var(&opts.buffer, "buffer", swr.DefaultBufferPercent, "Buffer around each band as a percentage of its centre frequency")
	cmd.Flags().StringArrayVar(&opts.bands, "band", nil, "Restrict the analysis to this band (repeatable)")
	cmd.Flags().StringArrayVar(&opts.shifts, "shift", nil, "Simulate an element length change, e.g. 20m=2.5 (repeatable)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts *analyzeOptions) error {
	shifts, err := parseShifts(opts.shifts)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	catalog, err := filestore.NewCatalog(catalogPath)
	if err != nil {
		return err
	}
	svc := processing.NewAnalysisService(catalog, nil, opts.buffer)

	ctx := cmd.Context()
	report, err := svc.Analyze(ctx, models.AnalyzeRequestBody{
		Filename: filepath.Base(path),
		Content:  string(content),
		Bands:    opts.bands,
	})
	if err != nil {
		return err
	}

	var shiftReport *models.ShiftReport
	if len(shifts) > 0 {
		shiftReport, err = svc.SimulateShift(ctx, models.ShiftRequestBody{
			Content: string(content),
			Shifts:  shifts,
		})
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if shiftReport != nil {
			return enc.Encode(struct {
				Analysis *models.AnalysisReport `json:"analysis"`
				Shift    *models.ShiftReport    `json:"shift"`
			}{report, shiftReport})
		}
		return enc.Encode(report)
	}

	printReport(out, report)
	if shiftReport != nil {
		fmt.Fprintln(out)
		printShifts(out, shiftReport)
	}
	return nil
}

// parseShifts turns band=percent flags into a shift map
func parseShifts(flags []string) (map[string]float64, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	shifts := make(map[string]float64, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid shift %q: expected band=percent", f)
		}
		pct, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid shift %q: %w", f, err)
		}
		shifts[strings.TrimSpace(name)] = pct
	}
	return shifts, nil
}

func printReport(w io.Writer, report *models.AnalysisReport) {
	fmt.Fprintf(w, "%s: %d-port (%s), %d points, %s to %s, Z0 %.0f ohm\n\n",
		report.Filename, report.PortCount, report.Format, report.PointCount,
		swr.FormatFrequency(report.MinFrequency), swr.FormatFrequency(report.MaxFrequency),
		report.ReferenceImpedance)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BAND\tRANGE\tMIN SWR\tMAX SWR\tAVG SWR\tREFLECTED\tPOINTS\tQUALITY")
	for _, b := range report.Bands {
		fmt.Fprintf(tw, "%s\t%s - %s\t%.2f\t%.2f\t%.2f\t%.1f%%\t%d\t%s\n",
			b.Band.Name,
			swr.FormatFrequency(b.Band.StartFreq), swr.FormatFrequency(b.Band.EndFreq),
			b.MinSWR, b.MaxSWR, b.AvgSWR, b.ReflectedPct, b.InBand, b.Quality.Grade)
	}
	tw.Flush()

	if len(report.RecommendedBands) > 0 {
		fmt.Fprintf(w, "\nRecommended: %s\n", strings.Join(report.RecommendedBands, ", "))
	}
}

func printShifts(w io.Writer, report *models.ShiftReport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BAND\tSHIFT\tMIN SWR\tSHIFTED MIN\tSHIFTED AVG\tIN BAND")
	for _, r := range report.Results {
		if !r.InBand {
			fmt.Fprintf(tw, "%s\t%+.2f%%\t%.2f\t-\t-\tno\n", r.Band, r.ShiftPercent, r.Original.MinSWR)
			continue
		}
		fmt.Fprintf(tw, "%s\t%+.2f%%\t%.2f\t%.2f\t%.2f\tyes\n",
			r.Band, r.ShiftPercent, r.Original.MinSWR, r.Shifted.MinSWR, r.Shifted.AvgSWR)
	}
	tw.Flush()

	if len(report.Skipped) > 0 {
		fmt.Fprintf(w, "\nNo data for: %s\n", strings.Join(report.Skipped, ", "))
	}
}
