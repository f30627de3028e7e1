package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/config"
	"github.com/washline/washline/internal/adapters/outbound/ledger"
	"github.com/washline/washline/internal/adapters/outbound/store"
	"github.com/washline/washline/internal/adapters/outbound/tui"
	"github.com/washline/washline/internal/application"
	"github.com/washline/washline/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "washline",
		Short:         "Track laundry orders from drop-off to pickup",
		Long:          "Washline tracks laundry orders through washing, drying, and pickup, computes service fees, and keeps every change checkpointed to disk.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newFinishCmd())
	cmd.AddCommand(newFindCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newClearCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "washline:", err)
		return err
	}
	return nil
}

// addDataFlag registers the shared --data flag pointing at the shop's data
// directory.
func addDataFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVar(target, "data", ".", "Data directory holding .washline.yaml and order files")
}

// buildServices wires the standard adapters for the given data directory and
// restores the order queue, returning any degraded-load warnings.
func buildServices(dataDir string) (*application.OrderService, []string, domain.Config, error) {
	cfg, err := config.New().Load(dataDir)
	if err != nil {
		return nil, nil, domain.Config{}, err
	}
	if cfg.DataDir == "." {
		cfg.DataDir = dataDir
	}

	st := store.New(cfg.OrdersPath(), cfg.FallbackOrdersPath())
	led := ledger.New(cfg)
	svc, warnings := application.NewOrderService(st, led, cfg)
	return svc, warnings, cfg, nil
}

// fallbackNotice warns when the last checkpoint landed on the fallback path,
// since the next run reads only the primary location.
func fallbackNotice(svc *application.OrderService, cfg domain.Config) string {
	p := svc.CheckpointPath()
	if p == "" || p == cfg.OrdersPath() {
		return ""
	}
	return tui.RenderWarnings([]string{fmt.Sprintf(
		"orders saved to fallback location %s; %s is not writable", p, cfg.OrdersPath())})
}
