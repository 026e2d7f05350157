package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/formlens/formlens/internal/output"
	"github.com/formlens/formlens/internal/reshape"
)

var reshapeCmd = &cobra.Command{
	Use:   "reshape [file]",
	Short: "Reshape wide JSON records into long key/value pairs",
	Long: `Read a JSON object or array of objects (from a file, or stdin when no
argument is given) and emit one key/value pair per property, in input order.
Column names default to Name/Value and can be overridden.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReshape,
}

func init() {
	rootCmd.AddCommand(reshapeCmd)

	reshapeCmd.Flags().String("key-column", "", "name of the key column (default from config)")
	reshapeCmd.Flags().String("value-column", "", "name of the value column (default from config)")
	reshapeCmd.Flags().StringP("output", "o", "table", "output format: table or json")
}

func runReshape(cmd *cobra.Command, args []string) error {
	keyColumn, _ := cmd.Flags().GetString("key-column")
	valueColumn, _ := cmd.Flags().GetString("value-column")
	outputFlag, _ := cmd.Flags().GetString("output")

	format, err := output.ParseFormat(outputFlag)
	if err != nil {
		return err
	}

	if keyColumn == "" {
		keyColumn = viper.GetString("reshape.key_column")
	}
	if valueColumn == "" {
		valueColumn = viper.GetString("reshape.value_column")
	}
	cols := reshape.Columns{Key: keyColumn, Value: valueColumn}.Normalize()

	var reader io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0]) // #nosec G304 -- input path is user-provided
		if err != nil {
			return err
		}
		defer file.Close() // nolint:errcheck
		reader = file
	}

	records, err := reshape.ReadRecords(reader)
	if err != nil {
		return err
	}

	pairs := reshape.Collect(reshape.Long(records))

	if format == output.FormatJSON {
		rendered, err := output.FormatPairsJSON(pairs, cols)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatPairsTable(pairs, cols))
	return nil
}
