package cmd

import (
	"fmt"

	"witnet_addresses/internal/infrastructure/tablesource"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole address table as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := tablesource.Format(format)
			if f != tablesource.FormatJSON && f != tablesource.FormatYAML {
				return fmt.Errorf("unsupported format %q, use json or yaml", format)
			}
			reg, err := loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			data, err := tablesource.Encode(reg.Snapshot(), f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			if err == nil && f == tablesource.FormatJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout())
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(tablesource.FormatJSON), "output format: json or yaml")
	return cmd
}
