package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Inspect transaction orders",
	}

	cmd.AddCommand(newOrdersGetCommand())

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Transactions().GetOrder(context.Background(), args[0])
			if err != nil {
				return err
			}

			return OutputResponse(resp)
		},
	}
}
