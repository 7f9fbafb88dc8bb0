package cmd

import (
	"fmt"
	"strings"

	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	var checksum bool

	cmd := &cobra.Command{
		Use:   "lookup <ecosystem> <network> <contract>",
		Short: "Print the address of a contract on a network",
		Long: fmt.Sprintf(`Print the address of a contract on a network.

Known contracts: %s`, contractVocabulary()),
		Example: `  witnet-addresses lookup default ethereum.mainnet WitnetRequestBoard
  witnet-addresses lookup celo celo.alfajores WitnetParserLib --checksum`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			addr, err := reg.Lookup(args[0], args[1], entity.ContractName(args[2]))
			if err != nil {
				return err
			}
			if checksum {
				if sum, ok := utils.ChecksumHex(addr); ok {
					addr = sum
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	cmd.Flags().BoolVar(&checksum, "checksum", false, "print the EIP-55 checksummed form instead of the stored one")
	return cmd
}

func contractVocabulary() string {
	names := entity.KnownContractNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
