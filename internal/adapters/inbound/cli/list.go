package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/tui"
)

func newListCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all open orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, warnings, _, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWarnings(warnings))
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(svc.List()))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	return cmd
}
