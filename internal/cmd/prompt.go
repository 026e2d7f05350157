package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/observability"
	"github.com/formlens/formlens/internal/output"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build and inspect prompt specifications",
}

var promptBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a prompt specification from flags",
	Long: `Build a single prompt specification, validating the options against
the chosen input type's rules. Advisory adjustments (substituted checkbox
message, discarded password default) are logged as warnings.`,
	RunE: runPromptBuild,
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.AddCommand(promptBuildCmd)

	promptBuildCmd.Flags().String("type", "text", "input type: text, checkbox, password, none")
	promptBuildCmd.Flags().String("message", "", "label text shown to the user")
	promptBuildCmd.Flags().String("default", "", "pre-filled value (text input only)")
	promptBuildCmd.Flags().Int("line-height", 0, "visible text lines (text input only)")
	promptBuildCmd.Flags().Bool("read-only", false, "make the field non-editable")
	promptBuildCmd.Flags().Bool("validate-not-empty", false, "reject empty values at submit time")
	promptBuildCmd.Flags().StringSlice("validate-set", nil, "allowed values")
	promptBuildCmd.Flags().StringP("output", "o", "table", "output format: table or json")
}

func runPromptBuild(cmd *cobra.Command, _ []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	message, _ := cmd.Flags().GetString("message")
	defaultValue, _ := cmd.Flags().GetString("default")
	readOnly, _ := cmd.Flags().GetBool("read-only")
	validateNotEmpty, _ := cmd.Flags().GetBool("validate-not-empty")
	validateSet, _ := cmd.Flags().GetStringSlice("validate-set")
	outputFlag, _ := cmd.Flags().GetString("output")

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	inputType, err := dialog.ParseInputType(typeFlag)
	if err != nil {
		return err
	}

	var lineHeight *int
	if cmd.Flags().Changed("line-height") {
		value, _ := cmd.Flags().GetInt("line-height")
		lineHeight = &value
	}

	spec, diags, err := dialog.Build(dialog.Options{
		InputType:        inputType,
		Message:          message,
		DefaultValue:     defaultValue,
		LineHeight:       lineHeight,
		ReadOnly:         readOnly,
		ValidateNotEmpty: validateNotEmpty,
		ValidateSet:      validateSet,
	})
	if err != nil {
		return err
	}

	logDiagnostics(diags)

	if spec == nil {
		if observability.CLILogger != nil {
			observability.CLILogger.Info("No input field requested (type none)")
		}
		return nil
	}

	rendered, err := renderSpec(format, spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func renderSpec(format output.Format, spec *dialog.PromptSpec) (string, error) {
	if format == output.FormatJSON {
		return output.FormatSpecJSON(spec)
	}
	return output.FormatSpecTable(spec), nil
}

func logDiagnostics(diags []dialog.Diagnostic) {
	if observability.CLILogger == nil {
		return
	}
	for _, d := range diags {
		observability.CLILogger.Warn("Prompt option adjusted",
			zap.String("field", d.Field),
			zap.String("reason", d.Message))
	}
}
