package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ThandieOps/dirtree/internal/cache"
	"github.com/ThandieOps/dirtree/internal/logger"
	"github.com/ThandieOps/dirtree/internal/tree"
	"github.com/spf13/cobra"
)

var clearCache bool

// lastCmd represents: `dirtree last [path]`
var lastCmd = &cobra.Command{
	Use:   "last [path]",
	Short: "Show the stored summary of the previous run for a path",
	Long: `Print the directory counts saved by the last 'dirtree --save' run
(or any run with cache.enabled set) over path, without walking it again.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cacheInstance, err := cache.New()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if clearCache {
			if err := cacheInstance.ClearCache(); err != nil {
				return err
			}
			logger.Info("cache cleared", "cache_dir", cacheInstance.GetCacheDir())
			fmt.Fprintln(out, "Cached summaries removed.")
			return nil
		}

		target := "."
		if len(args) == 1 {
			target = args[0]
		}
		root, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", target, err)
		}

		if !cacheInstance.HasCachedResult(root) {
			return fmt.Errorf("no stored summary for %s; run 'dirtree --save %s' first", root, target)
		}
		record, err := cacheInstance.LoadSummary(root)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Last run over %s at %s\n", record.Root, record.ScannedAt.Format(time.RFC3339))
		return tree.WriteReport(out, record.Summary)
	},
}

func init() {
	// Attach the `last` command to the root: dirtree last
	rootCmd.AddCommand(lastCmd)

	lastCmd.Flags().BoolVar(&clearCache, "clear", false, "Remove all stored summaries instead of printing one")
}
