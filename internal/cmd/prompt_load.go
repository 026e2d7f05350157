package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/output"
)

var promptLoadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load prompt specifications from YAML field definitions",
	Long: `Load one or more field definitions from a YAML file (or every *.yaml
file in the configured fields directory when no file is given), build each
definition, and list the resulting specifications.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPromptLoad,
}

func init() {
	promptCmd.AddCommand(promptLoadCmd)

	promptLoadCmd.Flags().StringP("output", "o", "table", "output format: table or json")
	promptLoadCmd.Flags().String("name", "", "print only the named field's full specification")
}

func runPromptLoad(cmd *cobra.Command, args []string) error {
	outputFlag, _ := cmd.Flags().GetString("output")
	nameFlag, _ := cmd.Flags().GetString("name")

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	var (
		fields []dialog.Field
		diags  []dialog.Diagnostic
	)
	if len(args) == 1 {
		data, err := os.ReadFile(args[0]) // #nosec G304 -- field path is user-provided
		if err != nil {
			return fmt.Errorf("read fields %s: %w", args[0], err)
		}
		fields, diags, err = dialog.Load(args[0], data)
		if err != nil {
			return err
		}
	} else {
		dir := strings.TrimSpace(viper.GetString("dialog.fields_dir"))
		if dir == "" {
			return errors.New("no file given and dialog.fields_dir is not configured")
		}
		fields, diags, err = dialog.LoadFromDir(dir)
		if err != nil {
			return err
		}
	}

	logDiagnostics(diags)

	if nameFlag != "" {
		reg, err := dialog.NewRegistry(fields)
		if err != nil {
			return err
		}
		spec, err := reg.Get(nameFlag)
		if err != nil {
			return err
		}
		rendered, err := renderSpec(format, spec)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	}

	if format == output.FormatJSON {
		rendered := make([]string, 0, len(fields))
		for _, field := range fields {
			specJSON, err := output.FormatSpecJSON(field.Spec)
			if err != nil {
				return err
			}
			rendered = append(rendered, specJSON)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "["+strings.Join(rendered, ",\n")+"]")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatFieldsTable(fields))
	return nil
}
