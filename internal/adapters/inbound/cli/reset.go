package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var (
		dataDir string
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the persisted order snapshot",
		Long:  "Remove the order snapshot file from disk. Sales ledgers and summaries are kept.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete the order file without --yes")
			}
			svc, _, cfg, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			if err := svc.Reset(); err != nil {
				// tolerated per the persistence contract: report, don't abort
				fmt.Fprintf(cmd.OutOrStdout(), "  Could not delete order file: %v\n", err)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  Order file removed (%s).\n", cfg.OrdersPath())
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deleting the order file")
	return cmd
}
