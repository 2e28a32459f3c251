package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	opts := &organizeOptions{}
	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "shelve <directory>",
		Short: "Sort a directory's files into category subfolders",
		Long: "Shelve scans a single directory and moves its files into category\n" +
			"subfolders (Images, Documents, Audio, ...) keyed by file extension.\n" +
			"Filename collisions are resolved by suffixing a counter; subdirectories\n" +
			"are never entered.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runOrganize(cmd, ctx, args[0], opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Report what would move without touching the filesystem")
	rootCmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Write the report as JSON to stdout")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Override log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&opts.logFormat, "log-format", "", "Override log format (console, json)")

	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
