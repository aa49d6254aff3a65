package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/httpclient"
	"shipment-tracker/internal/core/i18n"
	adapter "shipment-tracker/internal/features/tracking/adapters"
	"shipment-tracker/internal/features/tracking/domain"
	"shipment-tracker/internal/features/tracking/service"
	"shipment-tracker/internal/features/tracking/view"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// TrackCmd returns the track command, which prints a shipment's progress.
func TrackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track <tracking-number>",
		Short: "Show the status of a Bosta shipment",
		Long: `Fetch a shipment from the Bosta tracking service and print its
current state, the four-step progress and the transit events.

Usage:
  track 7234258                 # Arabic, the default page language
  track 7234258 --lang en       # English
  track 7234258 --json          # the same view the API returns`,
		Args:          cobra.ExactArgs(1),
		RunE:          runTrack,
		SilenceErrors: true,
	}

	cmd.Flags().String("lang", "", "Display language (ar, en); defaults to DEFAULT_LANGUAGE")
	cmd.Flags().Bool("json", false, "Print the tracking view as JSON")
	cmd.Flags().String("url", "", "Tracking service base URL; defaults to BOSTA_URL")
	cmd.Flags().Duration("timeout", 0, "Lookup timeout; defaults to FETCH_TIMEOUT")

	return cmd
}

func runTrack(cmd *cobra.Command, args []string) error {
	langFlag, _ := cmd.Flags().GetString("lang")
	asJSON, _ := cmd.Flags().GetBool("json")
	baseURL, _ := cmd.Flags().GetString("url")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	// Arguments are valid from here on; failures are not usage errors.
	cmd.SilenceUsage = true

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	if baseURL == "" {
		baseURL = cfg.Tracking.BaseURL
	}
	if timeout <= 0 {
		timeout = cfg.Tracking.FetchTimeout()
	}

	lang, ok := i18n.Parse(cfg.Tracking.DefaultLanguage)
	if !ok {
		lang = i18n.DefaultLanguage
	}
	if langFlag != "" {
		if lang, ok = i18n.Parse(langFlag); !ok {
			return fmt.Errorf("unsupported language %q (use ar or en)", langFlag)
		}
	}

	loc, err := cfg.Tracking.Location()
	if err != nil {
		return err
	}

	client := httpclient.New(httpclient.Options{Timeout: timeout, Proxy: cfg.Proxy})
	svc := service.NewTrackingService(adapter.NewBostaAdapter(baseURL, client), service.Options{
		Timeout:  timeout,
		Location: loc,
		HelpURL:  cfg.Tracking.HelpURL,
	}, nil)

	v, err := svc.Track(cmd.Context(), args[0], lang)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	printView(out, v)
	return nil
}

func printView(out io.Writer, v *view.TrackingView) {
	paint := severityColor(v.Stepper.Severity)

	if h := v.Header; h != nil {
		fmt.Fprintf(out, "%s: %s\n", v.Labels.TrackingNumber, h.TrackingNumber)
		fmt.Fprintf(out, "%s\n", paint.Sprint(h.StateText))
		fmt.Fprintf(out, "%s: %s\n", v.Labels.LastUpdate, h.LastUpdate)
		if h.Provider != "" {
			fmt.Fprintf(out, "%s: %s\n", v.Labels.Merchant, h.Provider)
		}
		fmt.Fprintf(out, "%s: %s\n", v.Labels.PromisedDate, h.PromisedDate)
		fmt.Fprintln(out)
	}

	for _, step := range v.Stepper.Steps {
		fmt.Fprintf(out, "%s %s\n", stepMarker(step.Status, paint), step.Title)
	}

	if len(v.Events.Rows) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, v.Labels.ShipmentDetails)

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join(v.Events.Columns, "\t"))
		for _, row := range v.Events.Rows {
			cells := make([]string, len(row.Cells))
			for i, cell := range row.Cells {
				if cell == "" {
					cell = "-"
				}
				cells[i] = cell
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
		w.Flush()
	}

	if v.Address != "" {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s: %s\n", v.Labels.DeliveryAddress, v.Address)
	}
}

func stepMarker(status view.StepStatus, paint *color.Color) string {
	switch status {
	case view.StepComplete:
		return paint.Sprint("[x]")
	case view.StepActive:
		return paint.Sprint("[>]")
	default:
		return "[ ]"
	}
}

func severityColor(s domain.Severity) *color.Color {
	switch s {
	case domain.SeverityProblem:
		return color.New(color.FgRed)
	case domain.SeverityInProgress:
		return color.New(color.FgYellow)
	case domain.SeveritySuccess:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}
