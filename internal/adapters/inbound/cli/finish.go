package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/tui"
	"github.com/washline/washline/internal/domain"
)

func newFinishCmd() *cobra.Command {
	var dataDir string

	cmd := &cobra.Command{
		Use:   "finish <id>",
		Short: "Finish an order and charge the fee",
		Long:  "Complete an order: charges the fee, records it in today's sales ledger, removes it from the queue, and prints a receipt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("order ID must be a number, got %q", args[0])
			}

			svc, warnings, cfg, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWarnings(warnings))

			o, fee, err := svc.Finish(id)
			if errors.Is(err, domain.ErrOrderNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "  Order %d not found.\n", id)
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReceipt(o, fee))
			fmt.Fprint(cmd.OutOrStdout(), fallbackNotice(svc, cfg))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	return cmd
}
