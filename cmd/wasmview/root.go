package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/wasmview/wasm"
)

type rootOptions struct {
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "wasmview",
		Short:         "Inspect the sections of a WebAssembly module",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			wasm.SetLogger(log)
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log decoding progress to stderr")

	cmd.AddCommand(
		newSectionsCommand(),
		newDumpCommand(),
		newOpsCommand(),
		newNamesCommand(),
		newLocateCommand(),
		newBrowseCommand(),
	)
	return cmd
}

// loadModule reads and decodes path. Only an unreadable file or a bad
// header is an error; decode problems are reported inline.
func loadModule(path string, opts wasm.Options) (*wasm.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	m, err := wasm.DecodeModuleWithOptions(data, opts)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return m, nil
}
