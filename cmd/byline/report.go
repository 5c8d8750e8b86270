package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"byline/internal/observability/metrics"
	pkgconfig "byline/internal/pkg/config"
	"byline/internal/usecase/catalog"
)

// MagazineOutput represents the JSON output format for one magazine.
type MagazineOutput struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	ArticleCount        int      `json:"article_count"`
	Titles              []string `json:"titles"`
	Contributors        []string `json:"contributors"`
	ContributingAuthors []string `json:"contributing_authors"`
}

// ReportOutput represents the JSON output format of the report command.
type ReportOutput struct {
	Magazines    []MagazineOutput `json:"magazines"`
	TopPublisher string           `json:"top_publisher"`
	Metrics      []string         `json:"metrics,omitempty"`
}

func newReportCmd(a *app) *cobra.Command {
	var (
		outputFormat string
		withMetrics  bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize every magazine of the sample graph",
		Long: `Summarize every magazine of the sample graph: article count, titles,
contributors and contributing authors (more than two articles).

Examples:
  byline report
  byline report --output json
  byline report --metrics`,
		Args: cobra.NoArgs,
		RunE: a.runE(func(cmd *cobra.Command, _ []string) error {
			if err := pkgconfig.ValidateOneOf("text", "json")(outputFormat); err != nil {
				return fmt.Errorf("invalid --output: %w", err)
			}

			ctx := cmd.Context()
			svc := a.newService()
			if _, err := seedSample(ctx, svc); err != nil {
				return fmt.Errorf("seed sample graph: %w", err)
			}

			summaries, err := svc.SummarizeAll(ctx)
			if err != nil {
				return err
			}
			top, err := svc.TopPublisher(ctx)
			if err != nil {
				return err
			}

			report := ReportOutput{TopPublisher: top.Name()}
			for _, s := range summaries {
				report.Magazines = append(report.Magazines, toOutput(s))
			}

			if withMetrics && a.cfg.Metrics.Enabled {
				samples, err := metrics.Collect(prometheus.DefaultGatherer, metrics.Namespace+"_")
				if err != nil {
					return err
				}
				for _, s := range samples {
					report.Metrics = append(report.Metrics, s.String())
				}
			}

			out := cmd.OutOrStdout()
			if strings.EqualFold(outputFormat, "json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writeTextReport(out, report, withMetrics && !a.cfg.Metrics.Enabled)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&withMetrics, "metrics", false, "append the metric values recorded during the run")
	return cmd
}

func toOutput(s catalog.MagazineSummary) MagazineOutput {
	return MagazineOutput{
		Name:                s.Name,
		Category:            s.Category,
		ArticleCount:        s.ArticleCount,
		Titles:              s.Titles,
		Contributors:        s.Contributors,
		ContributingAuthors: s.ContributingAuthors,
	}
}

func writeTextReport(w io.Writer, r ReportOutput, metricsDisabled bool) {
	for _, m := range r.Magazines {
		fmt.Fprintf(w, "%s (%s)\n", m.Name, m.Category)
		fmt.Fprintf(w, "  Articles: %d\n", m.ArticleCount)
		printList(w, "  Titles", m.Titles)
		printList(w, "  Contributors", m.Contributors)
		printList(w, "  Contributing authors", m.ContributingAuthors)
	}
	fmt.Fprintf(w, "Top publisher: %s\n", r.TopPublisher)

	if metricsDisabled {
		fmt.Fprintln(w, "Metrics: disabled")
		return
	}
	if len(r.Metrics) > 0 {
		fmt.Fprintln(w, "Metrics:")
		for _, s := range r.Metrics {
			fmt.Fprintf(w, "  %s\n", s)
		}
	}
}
