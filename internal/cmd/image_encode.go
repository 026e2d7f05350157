package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/formlens/formlens/internal/imaging"
	"github.com/formlens/formlens/internal/observability"
)

var imageEncodeCmd = &cobra.Command{
	Use:   "encode <path>...",
	Short: "Encode image files to portable base64 text",
	Long: `Re-encode each image into the target raster format in memory and print
its base64 representation, one line per input path. A path that cannot be
read or decoded fails that item only; remaining paths are still processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImageEncode,
}

func init() {
	imageCmd.AddCommand(imageEncodeCmd)

	imageEncodeCmd.Flags().String("format", "", "target format: png or jpeg (default from config)")
	imageEncodeCmd.Flags().Int("max-size", 0, "cap the longest side in pixels (0 = no scaling)")
	imageEncodeCmd.Flags().Int("jpeg-quality", 0, "JPEG quality 1-100 (default from config)")
}

func runImageEncode(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	maxSize, _ := cmd.Flags().GetInt("max-size")
	jpegQuality, _ := cmd.Flags().GetInt("jpeg-quality")

	if formatFlag == "" {
		formatFlag = viper.GetString("image.format")
	}
	if !cmd.Flags().Changed("max-size") {
		maxSize = viper.GetInt("image.max_size")
	}
	if jpegQuality == 0 {
		jpegQuality = viper.GetInt("image.jpeg_quality")
	}

	format, err := imaging.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	opts := imaging.EncodeOptions{
		Format:      format,
		MaxSize:     maxSize,
		JPEGQuality: jpegQuality,
	}

	failures := 0
	i := 0
	for encoded, err := range imaging.EncodeFiles(args, opts) {
		if err != nil {
			failures++
			if observability.CLILogger != nil {
				observability.CLILogger.Error("Encode failed",
					zap.String("path", args[i]),
					zap.Error(err))
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
		}
		i++
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d images failed to encode", failures, len(args))
	}
	return nil
}
