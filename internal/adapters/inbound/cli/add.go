package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/washline/washline/internal/adapters/outbound/tui"
)

func newAddCmd() *cobra.Command {
	var (
		dataDir string
		name    string
		contact string
		weight  float64
		service string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new laundry order",
		Long:  "Register a drop-off: the order enters the queue as \"For Washing\" and the snapshot is saved immediately.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, warnings, cfg, err := buildServices(dataDir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWarnings(warnings))

			o, err := svc.Add(name, contact, weight, service)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "  Order %d added for %s (%.2f kg, %s)\n",
				o.ID, o.Customer.Name, o.WeightKg, o.Service)
			fmt.Fprint(cmd.OutOrStdout(), fallbackNotice(svc, cfg))
			return nil
		},
	}

	addDataFlag(cmd, &dataDir)
	cmd.Flags().StringVar(&name, "name", "", "Customer name")
	cmd.Flags().StringVar(&contact, "contact", "", "Customer contact number")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Load weight in kilograms")
	cmd.Flags().StringVar(&service, "service", "", "Service category: wash, dry, fold, or combo")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
