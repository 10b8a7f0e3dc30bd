package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/encoder"
	"github.com/ben-blance/satish-image-format/internal/fileio"
)

var (
	convertGrayscale bool
	convertSharpen   bool
	convertBlur      float64
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input> [output]",
	Short: "Convert an image to SATISH format",
	Long: `Convert a standard image (PNG, JPEG, BMP, TIFF, WebP) to a SATISH
container file. When no output path is given, the input's directory and
base name are reused with the .satish extension.

Example:
  satish convert photo.png
  satish convert photo.png converted/photo.satish --grayscale`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		if !fileio.FileExists(input) {
			return fmt.Errorf("input file not found: %s", input)
		}
		if !fileio.IsSupportedImage(input) {
			return fmt.Errorf("unsupported image format: %s", input)
		}

		output := ""
		if len(args) == 2 {
			output = args[1]
		} else {
			var err error
			output, err = fileio.GenerateOutputPath(input, "", fileio.SatishExtension)
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

		opts := encoder.Options{
			Grayscale:  convertGrayscale,
			Sharpen:    convertSharpen,
			BlurRadius: convertBlur,
		}
		if err := encoder.EncodeImage(input, output, opts); err != nil {
			return err
		}

		outputInfo, err := fileio.Stat(output)
		if err != nil {
			return err
		}
		printSuccess("Conversion successful!")
		printField("Original", inputInfo.SizeHuman)
		printField("SATISH", outputInfo.SizeHuman)
		ratio := (1 - float64(outputInfo.Size)/float64(inputInfo.Size)) * 100
		printField("Size change", fmt.Sprintf("%.1f%%", ratio))
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVar(&convertGrayscale, "grayscale", false, "Convert to grayscale before encoding")
	convertCmd.Flags().BoolVar(&convertSharpen, "sharpen", false, "Sharpen before encoding")
	convertCmd.Flags().Float64Var(&convertBlur, "blur", 0, "Gaussian blur radius applied before encoding")
	rootCmd.AddCommand(convertCmd)
}
