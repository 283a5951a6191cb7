package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThandieOps/dirtree/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// initCmd represents: `dirtree init`
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dirtree configuration file",
	Long: `Initialize dirtree by creating a configuration file with your preferences.
This command will prompt you for configuration values with sensible defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runInit(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		return nil
	},
}

func init() {
	// Attach the `init` command to the root: dirtree init
	rootCmd.AddCommand(initCmd)
}

// runInit handles the interactive initialization process
func runInit(in io.Reader, out io.Writer) error {
	defaultConfigPath := configPath
	if defaultConfigPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
		defaultConfigPath = path
	}

	reader := bufio.NewReader(in)

	// Prompt for config file location
	fmt.Fprintf(out, "Config file location [%s]: ", defaultConfigPath)
	configPathInput := expandHome(readLine(reader))
	if configPathInput == "" {
		configPathInput = defaultConfigPath
	}

	cfg := config.Default()
	cfg.Tree.ShowHidden = askYesNo(reader, out, "Show hidden entries by default?")
	cfg.Tree.Angular = askYesNo(reader, out, "Exclude .vscode, node_modules and .git by default?")
	cfg.Cache.Enabled = askYesNo(reader, out, "Store summaries for 'dirtree last' after every run?")

	// Create directory if it doesn't exist
	configDir := filepath.Dir(configPathInput)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if config file already exists
	if _, err := os.Stat(configPathInput); err == nil {
		fmt.Fprintf(out, "\nConfig file already exists at %s\n", configPathInput)
		if !askYesNo(reader, out, "Overwrite?") {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPathInput, yamlData, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Configuration file created successfully at %s\n", configPathInput)
	return nil
}

func readLine(reader *bufio.Reader) string {
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// askYesNo prompts with a (y/N) suffix; anything but y/yes is no
func askYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N): ", question)
	answer := strings.ToLower(readLine(reader))
	return answer == "y" || answer == "yes"
}

// expandHome expands a leading ~/ to the home directory
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
