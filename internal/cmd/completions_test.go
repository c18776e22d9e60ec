package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/cameronsjo/rosctl/internal/template"
)

func TestCompleteResourceTypes(t *testing.T) {
	tests := []struct {
		name       string
		toComplete string
		want       []string
	}{
		{
			name:       "empty prefix returns all",
			toComplete: "",
			want:       knownResourceTypes,
		},
		{
			name:       "custom domain prefix",
			toComplete: "Aliyun::Serverless::Cu",
			want:       []string{template.CustomDomainType},
		},
		{
			name:       "shared prefix",
			toComplete: "Aliyun::Serverless::M",
			want:       []string{"Aliyun::Serverless::MNSTopic"},
		},
		{
			name:       "no match",
			toComplete: "ALIYUN::ROS",
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, directive := completeResourceTypes(templateAddCmd, nil, tt.toComplete)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
		})
	}
}

func TestCompleteTemplateDirs(t *testing.T) {
	got, directive := completeTemplateDirs(templateShowCmd, nil, "")
	assert.Nil(t, got)
	assert.Equal(t, cobra.ShellCompDirectiveFilterDirs, directive)

	_, directive = completeTemplateDirs(templateShowCmd, []string{"proj"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}

func TestCompleteUploadPayloads(t *testing.T) {
	got, directive := completeUploadPayloads(uploadCmd, nil, "")
	assert.Equal(t, []string{"json"}, got)
	assert.Equal(t, cobra.ShellCompDirectiveFilterFileExt, directive)

	_, directive = completeUploadPayloads(uploadCmd, []string{"payload.json"}, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
}
