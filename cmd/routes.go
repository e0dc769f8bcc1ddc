package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"wordle-web/core/navigator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// routeReport is one line of the routes command output.
type routeReport struct {
	navigator.RouteStatus
	Error string `json:"error,omitempty"`
}

// routesCmd represents the routes command
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the route table",
	Long: `Builds the route table exactly as the server does and prints it.
With --activate every route is activated once, which fetches lazy chunks from
the configured source and reports load failures.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		activate, _ := cmd.Flags().GetBool("activate")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		nav, err := newNavigator(cfg, logg)
		if err != nil {
			return err
		}

		errs := map[string]string{}
		failed := 0
		if activate {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			for _, r := range nav.Routes() {
				if _, err := nav.Activate(ctx, r); err != nil {
					logg.Warn("Route failed to activate", zap.String("path", r.Path), zap.Error(err))
					errs[r.Path] = err.Error()
					failed++
				}
			}
		}

		reports := make([]routeReport, 0)
		for _, st := range nav.Snapshot() {
			reports = append(reports, routeReport{RouteStatus: st, Error: errs[st.Path]})
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(reports); err != nil {
				return err
			}
		} else {
			printRoutes(reports)
		}

		if failed > 0 {
			return fmt.Errorf("%d route(s) failed to activate", failed)
		}
		return nil
	},
}

func printRoutes(reports []routeReport) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tLOADER\tSTATE\tFETCHES\tERROR")
	for _, r := range reports {
		loader := "eager"
		if r.Lazy {
			loader = "lazy"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", r.Path, r.Name, loader, r.State, r.Fetches, r.Error)
	}
	_ = w.Flush()
}

func init() {
	routesCmd.Flags().Bool("activate", false, "Activate every route and report load failures")
	routesCmd.Flags().Bool("json", false, "Output JSON")
	routesCmd.Flags().Duration("timeout", 30*time.Second, "Overall activation timeout")
	RootCmd.AddCommand(routesCmd)
}
