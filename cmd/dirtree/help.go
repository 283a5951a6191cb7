package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// helpCmd represents: `dirtree help [command]`
// This wraps Cobra's built-in help but allows customization
var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Help about any command",
	Long:  `Help provides help for any command in the application. Simply type 'dirtree help [command]' for full details.`,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			fmt.Fprint(out, rootCmd.UsageString())
			return
		}

		// Find the requested command; leftover args mean no subcommand matched
		targetCmd, rest, err := rootCmd.Find(args)
		if err != nil || targetCmd == nil || len(rest) > 0 {
			fmt.Fprintf(out, "Unknown help topic '%s'. Run 'dirtree help'.\n", strings.Join(args, " "))
			return
		}

		fmt.Fprint(out, targetCmd.UsageString())
	},
}

func init() {
	// Replace Cobra's built-in help command with ours
	rootCmd.SetHelpCommand(helpCmd)
}
