package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThandieOps/dirtree/internal/cache"
	"github.com/ThandieOps/dirtree/internal/config"
	"github.com/ThandieOps/dirtree/internal/logger"
	"github.com/ThandieOps/dirtree/internal/scanner"
	"github.com/ThandieOps/dirtree/internal/tree"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

const (
	flagAll       = "all"
	flagDirsOnly  = "dirs-only"
	flagAngular   = "angular"
	flagGitignore = "gitignore"
	flagSave      = "save"
)

var (
	// Global flags (available to all subcommands)
	configPath string

	showHidden   bool
	dirsOnly     bool
	angular      bool
	useGitignore bool
	saveSummary  bool

	// cfg is loaded before any command runs
	cfg *config.Config
)

// rootCmd represents the base command: `dirtree [path]`
var rootCmd = &cobra.Command{
	Use:   "dirtree [path]",
	Short: "Render a directory tree with per-depth directory counts",
	Long: `dirtree prints the directory tree under path (default: the current
directory) and finishes with the number of directories found at each depth.

Hidden entries are left out unless --all is given. --angular drops the
.vscode, node_modules and .git directories together with their contents.`,
	Version:           resolveVersion(),
	Args:              cobra.MaximumNArgs(1),
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runTree,
}

// Execute is called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Close()
		os.Exit(1)
	}
}

func init() {
	// Global/persistent flags available to ALL subcommands
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"",
		"Path to the config file (default: <user config dir>/dirtree/config.yml)",
	)

	rootCmd.Flags().BoolVarP(&showHidden, flagAll, "a", false, "Include hidden files and directories")
	rootCmd.Flags().BoolVar(&dirsOnly, flagDirsOnly, false, "Show directories only")
	rootCmd.Flags().BoolVar(&angular, flagAngular, false, "Exclude .vscode, node_modules and .git directories")
	rootCmd.Flags().BoolVar(&useGitignore, flagGitignore, false, "Skip entries matched by .gitignore files")
	rootCmd.Flags().BoolVar(&saveSummary, flagSave, false, "Store the summary for the last command")
}

// loadConfig reads the config file and sets up logging
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.JSON, cfg.Logging.ToFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runTree(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}

	opts := traversalOptions(cmd, target)
	logger.Info("rendering tree",
		"path", opts.Root,
		"show_hidden", opts.ShowHidden,
		"dirs_only", opts.DirsOnly,
		"angular", opts.Angular,
		"gitignore", opts.Gitignore,
		"ignore_dirs", opts.IgnoreDirs)

	summary, err := tree.Generate(afero.NewOsFs(), opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	logger.Info("tree rendered", "directories", summary.Total)

	if saveSummary || cfg.Cache.Enabled {
		storeSummary(opts, summary)
	}
	return nil
}

// traversalOptions resolves the scan settings: a flag given on the command
// line wins, otherwise the config (file or environment) value applies.
func traversalOptions(cmd *cobra.Command, target string) scanner.Options {
	opts := scanner.Options{
		Root:       target,
		ShowHidden: cfg.Tree.ShowHidden,
		DirsOnly:   cfg.Tree.DirsOnly,
		Angular:    cfg.Tree.Angular,
		Gitignore:  cfg.Tree.Gitignore,
		IgnoreDirs: cfg.Tree.IgnoreDirs,
	}

	flags := cmd.Flags()
	if flags.Changed(flagAll) {
		opts.ShowHidden = showHidden
	}
	if flags.Changed(flagDirsOnly) {
		opts.DirsOnly = dirsOnly
	}
	if flags.Changed(flagAngular) {
		opts.Angular = angular
	}
	if flags.Changed(flagGitignore) {
		opts.Gitignore = useGitignore
	}
	return opts
}

// storeSummary saves the run to the cache. Failures are logged, never returned.
func storeSummary(opts scanner.Options, summary tree.Summary) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		logger.Warn("failed to resolve path for cache", "path", opts.Root, "error", err)
		return
	}

	cacheInstance, err := cache.New()
	if err != nil {
		logger.Warn("failed to initialize cache", "error", err)
		return
	}
	if err := cacheInstance.SaveSummary(root, opts, summary); err != nil {
		logger.Warn("failed to save summary to cache", "error", err)
		return
	}
	logger.Debug("summary cached", "root", root, "cache_dir", cacheInstance.GetCacheDir())
}
