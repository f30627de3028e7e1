package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/config"
	"github.com/washline/washline/internal/adapters/outbound/ledger"
	"github.com/washline/washline/internal/adapters/outbound/store"
	"github.com/washline/washline/internal/adapters/outbound/tui"
	"github.com/washline/washline/internal/application"
)

func newReportCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a sales summary of the open orders",
		Long:  "Generate a timestamped summary file listing every open order with its projected fee and a grand total. Each run produces a new file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New().Load(dataDir)
			if err != nil {
				return err
			}
			if cfg.DataDir == "." {
				cfg.DataDir = dataDir
			}

			st := store.New(cfg.OrdersPath(), cfg.FallbackOrdersPath())
			svc := application.NewReportService(st, ledger.New(cfg), cfg)

			path, warnings, err := svc.GenerateSummary()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWarnings(warnings))
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSaved("summary written to", path))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	return cmd
}
