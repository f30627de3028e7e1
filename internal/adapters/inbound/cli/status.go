package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/tui"
	"github.com/washline/washline/internal/domain"
)

func newStatusCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "status <id> <new-status>",
		Short: "Update an order's status",
		Long:  "Move an order to a new lifecycle label: For Washing, Drying, Ready for Pickup, or Finished. Multi-word labels may be given unquoted.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order ID must be a number, got %q", args[0])
			}
			newStatus := strings.Join(args[1:], " ")

			svc, warnings, cfg, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWarnings(warnings))

			o, err := svc.UpdateStatus(id, newStatus)
			if errors.Is(err, domain.ErrOrderNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "  Order %d not found.\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "  Order %d is now %q\n", o.ID, o.Status)
			fmt.Fprint(cmd.OutOrStdout(), fallbackNotice(svc, cfg))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	return cmd
}
