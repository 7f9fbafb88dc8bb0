package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"witnet_addresses/internal/app/provider"
	"witnet_addresses/internal/app/service"
	"witnet_addresses/internal/config"
	"witnet_addresses/internal/domain/entity"
	"witnet_addresses/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitNotFound = 2
)

var (
	// Version information
	Version   = "0.1.0"
	CommitSHA = "unknown"

	// Global flags
	sourceFlag  string
	timeoutFlag time.Duration
	debugMode   bool
)

// NewRootCmd builds the command tree. Output goes to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "witnet-addresses",
		Short: "Look up deployed Witnet contract addresses",
		Long: `witnet-addresses resolves (ecosystem, network, contract) triples into the
addresses of deployed Witnet contracts.

The built-in table is used unless --source points to a YAML/JSON file or an
http(s) URL serving the same document.`,
		Version:       fmt.Sprintf("%s (Commit: %s)", Version, CommitSHA),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "error"
			if debugMode {
				level = "debug"
			}
			return logger.Init(level, "console")
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&sourceFlag, "source", config.SourceEmbedded,
		`address table source: "embedded", a .yaml/.yml/.json path, or an http(s) URL`)
	root.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 10*time.Second,
		"timeout for loading a remote table")
	root.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	root.AddCommand(newLookupCmd(), newNetworksCmd(), newEcosystemsCmd(), newExportCmd())
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd(os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, entity.ErrUnknownEcosystem) {
			return exitNotFound
		}
		return exitError
	}
	return exitOK
}

func loadRegistry(ctx context.Context) (*service.AddressRegistry, error) {
	cfg := config.RegistryConfig{
		Source:               sourceFlag,
		RequestTimeoutMillis: timeoutFlag.Milliseconds(),
	}
	return provider.LoadRegistry(ctx, cfg, logger.NewNamedAdapter("tablesource"), logger.NewNamedAdapter("registry"))
}
