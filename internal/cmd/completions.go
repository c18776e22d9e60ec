package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/cameronsjo/rosctl/internal/template"
)

// knownResourceTypes are offered when completing --type.
var knownResourceTypes = []string{
	template.ServiceType,
	template.CustomDomainType,
	"Aliyun::Serverless::Function",
	"Aliyun::Serverless::Log",
	"Aliyun::Serverless::TableStore",
	"Aliyun::Serverless::MNSTopic",
}

// completeResourceTypes completes the --type flag of template add.
func completeResourceTypes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var types []string
	for _, t := range knownResourceTypes {
		if strings.HasPrefix(t, toComplete) {
			types = append(types, t)
		}
	}
	return types, cobra.ShellCompDirectiveNoFileComp
}

// completeTemplateDirs completes directory arguments of the template commands.
func completeTemplateDirs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeUploadPayloads completes JSON payload files for upload.
func completeUploadPayloads(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}

// registerCompletions registers all dynamic completions for commands.
func registerCompletions() {
	templateShowCmd.ValidArgsFunction = completeTemplateDirs
	templateInitCmd.ValidArgsFunction = completeTemplateDirs
	templateResourcesCmd.ValidArgsFunction = completeTemplateDirs
	uploadCmd.ValidArgsFunction = completeUploadPayloads

	if err := templateAddCmd.RegisterFlagCompletionFunc("type", completeResourceTypes); err != nil {
		// Silently ignore - completions are optional
		_ = err
	}
}

// init defers registration until cobra initializes so every command exists.
func init() {
	cobra.OnInitialize(registerCompletions)
}
