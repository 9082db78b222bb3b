package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var supportedShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for lifetuner.

Bash:
  source <(lifetuner completion bash)
  lifetuner completion bash > ~/.local/share/bash-completion/completions/lifetuner

Zsh:
  mkdir -p ~/.zsh/completion
  lifetuner completion zsh > ~/.zsh/completion/_lifetuner
  # then add ~/.zsh/completion to fpath and run compinit

Fish:
  lifetuner completion fish > ~/.config/fish/completions/lifetuner.fish

PowerShell:
  lifetuner completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: supportedShells,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion writes the completion script for shell to stdout
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		fail(fmt.Sprintf("Unsupported shell '%s'", shell), nil, "Supported shells: bash, zsh, fish, powershell")
		return
	}

	if err != nil {
		fail(fmt.Sprintf("Failed to generate %s completion", shell), err)
	}
}
