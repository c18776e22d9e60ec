// Package cmd provides the CLI commands for rosctl.
package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/rosctl/internal/ui"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rosctl",
	Short: "Serverless template and upload helper",
	Long: `rosctl - serverless template and upload helper

Manages the ROS template (template.yml or template.yaml) of a serverless
project and streams deployment payloads with upload progress.

TEMPLATE COMMANDS
  template show [dir]         Print the normalized template
  template init [dir]         Create or normalize the template
  template resources [dir]    List declared resources
  template add <name>         Declare a new resource
    --type, -t <type>         Resource type (required)
    --description <text>      Optional description
    --code-uri <path>         Optional code location
    --function <name>         Derive the code location from a function name

UPLOAD COMMANDS
  upload <payload.json>       Stream a JSON payload to an endpoint
    --url <url>               Upload endpoint (or ROSCTL_UPLOAD_URL)
    --no-progress             Never draw the progress bar

ENVIRONMENT
  ROSCTL_DIR                  Project directory (skips discovery)
  ROSCTL_UPLOAD_URL           Default upload endpoint
  ROSCTL_NO_PROGRESS          Disable the progress bar`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errTemplateNotFound) {
			ui.Warning("%v", err)
		} else {
			ui.Error("%v", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate("rosctl version {{.Version}}\n")
}
