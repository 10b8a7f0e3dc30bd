package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/colors"
	"github.com/ben-blance/satish-image-format/internal/decoder"
	"github.com/ben-blance/satish-image-format/internal/fileio"
)

var infoDetailed bool

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show information about a SATISH file",
	Long: `Display the header fields and payload accounting of a SATISH file.
With --detailed the pixel data is decoded and color statistics are shown.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		report, err := decoder.Info(path)
		if err != nil {
			return err
		}

		printField("File", report.FilePath)
		printField("Size", fileio.FormatFileSize(report.FileSize))
		printField("Magic", report.Header.Magic)
		printField("Dimensions", fmt.Sprintf("%dx%d", report.Header.Width, report.Header.Height))
		printField("Channels", fmt.Sprintf("%d (%s)", report.Header.Channels, report.ChannelFormat))
		printField("Version", fmt.Sprintf("%d", report.Header.Version))
		printField("Pixels", fmt.Sprintf("%d", report.PixelCount))
		printField("Payload", fmt.Sprintf("%d bytes (expected %d)", report.ActualPayload, report.ExpectedPayload))
		if report.PayloadValid {
			printSuccess("Payload size: OK")
		} else {
			printWarning("Payload size: MISMATCH")
		}

		if !infoDetailed {
			return nil
		}

		im, err := decoder.DecodeFile(path)
		if err != nil {
			return err
		}
		stats := colors.PaletteStats(im.Pixels)
		fmt.Println()
		printField("Unique colors", fmt.Sprintf("%d", stats.UniqueColors))
		printField("Average brightness", fmt.Sprintf("%.3f", stats.AverageBrightness))
		printField("Color diversity", fmt.Sprintf("%.3f", colors.Diversity(im.Pixels)))
		for i, cc := range stats.MostCommon {
			hex, err := colors.RGBToHex(int(cc.Color.R), int(cc.Color.G), int(cc.Color.B))
			if err != nil {
				return err
			}
			printField(fmt.Sprintf("  #%d", i+1), fmt.Sprintf("#%s (%d px)", hex, cc.Count))
		}
		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVarP(&infoDetailed, "detailed", "d", false, "Decode pixels and show color statistics")
	rootCmd.AddCommand(infoCmd)
}
