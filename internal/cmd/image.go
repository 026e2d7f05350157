package cmd

import (
	"github.com/spf13/cobra"
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Image codec utilities",
}

func init() {
	rootCmd.AddCommand(imageCmd)
}
