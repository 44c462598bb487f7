// Package main provides the CLI entry point for inbound-go.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/inbound-go/pkg/inbound"
)

var (
	configPath string
	verbose    bool
	dryRun     bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inbound",
		Short: "Build the weekly inbound logistics report",
		Long: `inbound collects the latest ERP, forwarder, portal, carrier and status
exports from the dated drop folders, normalises them and pastes them into a
dated copy of the master template workbook.

Run without arguments to use the compiled-in configuration.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	foldersCmd := &cobra.Command{
		Use:   "folders",
		Short: "Show the newest drop folder found for every source",
		Args:  cobra.NoArgs,
		RunE:  folders,
	}

	configCmd := &cobra.Command{
		Use:   "config PATH",
		Short: "Write the effective configuration to a YAML file",
		Long: `config writes the compiled-in configuration, overlaid with --config when
given, to PATH. The file can be edited and passed back with --config.`,
		Args: cobra.ExactArgs(1),
		RunE: writeConfig,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file overriding the compiled-in configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Load and clean every source without writing the report")
	rootCmd.AddCommand(foldersCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func options() (inbound.Options, error) {
	if configPath == "" {
		return inbound.DefaultOptions(), nil
	}
	return inbound.LoadOptions(configPath)
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}
	opts.DryRun = dryRun

	result, err := inbound.Run(opts, inbound.Sources(), logger)
	if err != nil {
		logger.Error("Run failed", zap.Error(err))
		return err
	}

	if len(result.Failures) > 0 {
		logger.Warn("Some sources were skipped", zap.Int("skipped", len(result.Failures)))
	}
	if result.Output != "" {
		fmt.Printf("Saved %s\n", result.Output)
	}

	return nil
}

func folders(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	sources := inbound.Sources()
	result, err := inbound.Locate(opts, sources, logger)
	if err != nil {
		return err
	}

	sort.SliceStable(sources, func(i, j int) bool { return sources[i].Name < sources[j].Name })
	for _, src := range sources {
		folder, ok := result.Folders[src.Prefix]
		if !ok {
			folder = "(not found)"
		}
		fmt.Printf("%-10s %-20s %s\n", src.Name, src.Prefix+"*", folder)
	}

	return nil
}

func writeConfig(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}

	if err := opts.Save(args[0]); err != nil {
		logger.Error("Failed to write config", zap.String("path", args[0]), zap.Error(err))
		return err
	}

	fmt.Printf("Wrote %s\n", args[0])
	return nil
}
