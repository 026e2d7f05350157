package cmd

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/formlens/formlens/internal/imaging"
)

var imageDecodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode base64 text back into a PNG image",
	Long: `Read a base64 text representation (from a file, or stdin when the
argument is "-"), decode it into a normalized bitmap, and write the result
as PNG to --out or stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runImageDecode,
}

func init() {
	imageCmd.AddCommand(imageDecodeCmd)

	imageDecodeCmd.Flags().String("out", "", "output PNG path (defaults to stdout)")
}

func runImageDecode(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0]) // #nosec G304 -- input path is user-provided
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	img, err := imaging.Decode(string(data))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		file, err := os.Create(outPath) // #nosec G304 -- output path is user-provided
		if err != nil {
			return err
		}
		defer file.Close() // nolint:errcheck
		out = file
	}

	return png.Encode(out, img)
}
