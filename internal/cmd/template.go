package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cameronsjo/rosctl/internal/lock"
	"github.com/cameronsjo/rosctl/internal/template"
	"github.com/cameronsjo/rosctl/internal/ui"
)

// templateLockName guards read-modify-write cycles on the template.
const templateLockName = "template"

var (
	addType        string
	addDescription string
	addCodeURI     string
	addFunction    string
	addDir         string
)

// templateCmd groups the template subcommands.
var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Inspect and edit the project template",
	Long: `Inspect and edit the ROS template of the project.

The template is read from template.yml, or template.yaml when the former
does not exist. Loading always normalizes the document: the format version
and resource map are filled in and the serverless transform is declared.`,
}

// templateShowCmd prints the normalized template.
var templateShowCmd = &cobra.Command{
	Use:   "show [dir]",
	Short: "Print the normalized template",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTemplateShow,
}

// templateInitCmd creates or normalizes the template.
var templateInitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create or normalize the template",
	Long: `Create template.yml with the default header when the directory has no
template, or rewrite the existing template in normalized form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplateInit,
}

// templateResourcesCmd lists declared resources.
var templateResourcesCmd = &cobra.Command{
	Use:     "resources [dir]",
	Aliases: []string{"ls"},
	Short:   "List declared resources",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runTemplateResources,
}

// templateAddCmd declares a new resource.
var templateAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Declare a new resource",
	Long: `Declare a new resource in the template. Fails when a resource with the
same name already exists. A missing template is created.

Examples:
  rosctl template add demo -t Aliyun::Serverless::Service
  rosctl template add web -t Aliyun::Serverless::Function --function index`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateAdd,
}

func init() {
	templateAddCmd.Flags().StringVarP(&addType, "type", "t", "", "Resource type")
	templateAddCmd.Flags().StringVar(&addDescription, "description", "", "Resource description")
	templateAddCmd.Flags().StringVar(&addCodeURI, "code-uri", "", "Code location")
	templateAddCmd.Flags().StringVar(&addFunction, "function", "", "Function name used to derive the code location")
	templateAddCmd.Flags().StringVarP(&addDir, "dir", "C", "", "Project directory")
	templateAddCmd.MarkFlagRequired("type")

	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateInitCmd)
	templateCmd.AddCommand(templateResourcesCmd)
	templateCmd.AddCommand(templateAddCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	dir, err := templateDir(args)
	if err != nil {
		return err
	}

	return withTemplate(dir, func(file *template.File) error {
		data, err := template.Marshal(file.Document)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	})
}

func runTemplateInit(cmd *cobra.Command, args []string) error {
	dir, err := templateDir(args)
	if err != nil {
		return err
	}

	return lock.WithLock(dir, templateLockName, func() error {
		return initTemplate(dir)
	})
}

func initTemplate(dir string) error {
	file, found, err := template.Load(dir)
	if err != nil {
		return err
	}

	if found {
		if err := file.Save(); err != nil {
			return err
		}
		ui.Success("Normalized %s", file.Path)
		return nil
	}

	path := filepath.Join(dir, template.PrimaryFileName)
	if err := template.Save(path, template.DefaultDocument()); err != nil {
		return err
	}
	ui.Success("Created %s", path)
	return nil
}

func runTemplateResources(cmd *cobra.Command, args []string) error {
	dir, err := templateDir(args)
	if err != nil {
		return err
	}

	return withTemplate(dir, func(file *template.File) error {
		doc := file.Document
		if len(doc.Resources) == 0 {
			ui.Info("No resources declared in %s", file.Path)
			return nil
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Type"})
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(true)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)
		table.SetTablePadding("\t")

		for _, name := range doc.ResourceNames() {
			table.Append([]string{name, doc.Resources[name].Type()})
		}
		table.Render()
		return nil
	})
}

func runTemplateAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	dir, err := templateDir([]string{addDir})
	if err != nil {
		return err
	}

	return lock.WithLock(dir, templateLockName, func() error {
		return addResource(dir, name)
	})
}

func addResource(dir, name string) error {
	file, found, err := template.Load(dir)
	if err != nil {
		return err
	}
	if !found {
		file = &template.File{
			Path:     filepath.Join(dir, template.PrimaryFileName),
			Document: template.DefaultDocument(),
		}
	}

	codeURI := addCodeURI
	if codeURI == "" && addFunction != "" {
		codeURI = template.CodeURI(name, addFunction)
	}

	props := template.Resource{}
	props.SetIfPresent("Description", addDescription)
	props.SetIfPresent("CodeUri", codeURI)

	res := template.Resource{"Type": addType}
	if len(props) > 0 {
		res["Properties"] = map[string]any(props)
	}

	if err := file.Document.AddResource(name, res); err != nil {
		return err
	}

	if err := file.Save(); err != nil {
		return fmt.Errorf("save template: %w", err)
	}

	ui.Template("Added %s (%s) to %s", name, addType, file.Path)
	return nil
}
