package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/format"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and format information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("satish %s\n", version)
		fmt.Printf("  Build time: %s\n", buildTime)
		fmt.Printf("  Git commit: %s\n", gitCommit)

		info := format.FormatInfo()
		fmt.Println()
		printField("Format", info.Name)
		printField("Format version", fmt.Sprintf("%d", info.Version))
		printField("Magic", info.Magic)
		printField("Extension", info.Extension)
		printField("Header size", fmt.Sprintf("%d bytes", info.HeaderSize))
		printField("Pixel encoding", info.PixelEncoding)
		printField("Max dimensions", fmt.Sprintf("%dx%d", info.MaxWidth, info.MaxHeight))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
