package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/formlens/formlens/internal/config"
	"github.com/formlens/formlens/internal/core/store"
	"github.com/formlens/formlens/internal/dialog"
	"github.com/formlens/formlens/internal/output"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage stored prompt-spec presets",
}

var presetSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a prompt definition as a named preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetSave,
}

var presetGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show a stored preset's built specification",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetGet,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	RunE:  runPresetList,
}

var presetRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Delete a stored preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetRm,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetSaveCmd, presetGetCmd, presetListCmd, presetRmCmd)

	presetSaveCmd.Flags().String("type", "text", "input type: text, checkbox, password")
	presetSaveCmd.Flags().String("message", "", "label text shown to the user")
	presetSaveCmd.Flags().String("default", "", "pre-filled value (text input only)")
	presetSaveCmd.Flags().Int("line-height", 0, "visible text lines (text input only)")
	presetSaveCmd.Flags().Bool("read-only", false, "make the field non-editable")
	presetSaveCmd.Flags().Bool("validate-not-empty", false, "reject empty values at submit time")
	presetSaveCmd.Flags().StringSlice("validate-set", nil, "allowed values")

	presetGetCmd.Flags().StringP("output", "o", "table", "output format: table or json")
}

func openStore(ctx context.Context) (*store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	typeFlag, _ := cmd.Flags().GetString("type")
	message, _ := cmd.Flags().GetString("message")
	defaultValue, _ := cmd.Flags().GetString("default")
	readOnly, _ := cmd.Flags().GetBool("read-only")
	validateNotEmpty, _ := cmd.Flags().GetBool("validate-not-empty")
	validateSet, _ := cmd.Flags().GetStringSlice("validate-set")

	var lineHeight *int
	if cmd.Flags().Changed("line-height") {
		value, _ := cmd.Flags().GetInt("line-height")
		lineHeight = &value
	}

	preset := store.Preset{
		Name:             args[0],
		InputType:        typeFlag,
		Message:          message,
		DefaultValue:     defaultValue,
		LineHeight:       lineHeight,
		ReadOnly:         readOnly,
		ValidateNotEmpty: validateNotEmpty,
		ValidateSet:      validateSet,
	}

	// Validate through the builder before persisting; a preset that can
	// never build is not worth storing.
	opts, err := preset.Options()
	if err != nil {
		return err
	}
	spec, diags, err := dialog.Build(opts)
	if err != nil {
		return err
	}
	if spec == nil {
		return fmt.Errorf("input type none describes no field, refusing to save preset %q", args[0])
	}
	logDiagnostics(diags)

	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() // nolint:errcheck

	if err := st.UpsertPreset(ctx, preset, time.Now().UTC()); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", args[0])
	return nil
}

func runPresetGet(cmd *cobra.Command, args []string) error {
	outputFlag, _ := cmd.Flags().GetString("output")
	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() // nolint:errcheck

	record, err := st.GetPreset(ctx, args[0])
	if err != nil {
		return err
	}
	if record == nil {
		return fmt.Errorf("preset %q not found", args[0])
	}

	opts, err := record.Preset.Options()
	if err != nil {
		return err
	}
	spec, diags, err := dialog.Build(opts)
	if err != nil {
		return err
	}
	logDiagnostics(diags)

	rendered, err := renderSpec(format, spec)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

func runPresetList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() // nolint:errcheck

	records, err := st.ListPresets(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Name", "Type", "Message", "Updated"})
	for _, record := range records {
		t.AppendRow(table.Row{
			record.Preset.Name,
			record.Preset.InputType,
			record.Preset.Message,
			record.UpdatedAt.Format(time.RFC3339),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}

func runPresetRm(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close() // nolint:errcheck

	deleted, err := st.DeletePreset(ctx, args[0])
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("preset %q not found", args[0])
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
	return nil
}
