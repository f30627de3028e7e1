package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/tui"
)

func newFindCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "find <name-or-contact>",
		Short: "Find orders by customer name or contact",
		Long:  "List all open orders whose customer name matches (ignoring case) or whose contact matches exactly.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			svc, warnings, _, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWarnings(warnings))

			matches := svc.Find(query)
			if len(matches) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  No orders found for %q.\n", query)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(matches))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	return cmd
}
