package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/decoder"
	"github.com/ben-blance/satish-image-format/internal/fileio"
)

var extractFormat string

var extractFormats = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"bmp":  true,
	"tiff": true,
	"gif":  true,
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <input> [output]",
	Short: "Convert a SATISH file back to a standard image",
	Long: `Extract a SATISH container file to a standard raster image. The
output format follows --format unless an explicit output path with an
extension is given.

Example:
  satish extract photo.satish
  satish extract photo.satish photo.jpg --format jpg`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if !fileio.FileExists(input) {
			return fmt.Errorf("input file not found: %s", input)
		}
		if !fileio.IsSatishFile(input) {
			return fmt.Errorf("not a SATISH file: %s", input)
		}

		outFormat := strings.ToLower(extractFormat)
		if !extractFormats[outFormat] {
			return fmt.Errorf("unsupported output format: %s", extractFormat)
		}

		output := ""
		if len(args) == 2 {
			output = args[1]
		} else {
			var err error
			output, err = fileio.GenerateOutputPath(input, "", "."+outFormat)
			if err != nil {
				return err
			}
		}

		inputInfo, err := fileio.Stat(input)
		if err != nil {
			return err
		}
		printField("Converting", fmt.Sprintf("%s (%s)", inputInfo.Name, inputInfo.SizeHuman))
		printField("Output", output)

		if err := decoder.DecodeToImage(input, output); err != nil {
			return err
		}

		outputInfo, err := fileio.Stat(output)
		if err != nil {
			return err
		}
		printSuccess("Conversion successful!")
		printField("SATISH", inputInfo.SizeHuman)
		printField(strings.ToUpper(outFormat), outputInfo.SizeHuman)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "png", "Output image format (png, jpg, jpeg, bmp, tiff, gif)")
	rootCmd.AddCommand(extractCmd)
}
