package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks <ecosystem>",
		Short: "List the networks of an ecosystem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			networks, err := reg.ListNetworks(args[0])
			if err != nil {
				return err
			}
			for _, n := range networks {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}

func newEcosystemsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ecosystems",
		Short: "List all ecosystems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			for _, e := range reg.ListEcosystems() {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
}
