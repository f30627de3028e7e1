package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd() *cobra.Command {
	var (
		dataDir string
		yes     bool
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop all open orders",
		Long:  "Empty the order queue. The ID counter keeps counting, so cleared IDs are never reissued against old ledger entries.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear all orders without --yes")
			}
			svc, _, cfg, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			if err := svc.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "  All open orders cleared.")
			fmt.Fprint(cmd.OutOrStdout(), fallbackNotice(svc, cfg))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing all open orders")
	return cmd
}
