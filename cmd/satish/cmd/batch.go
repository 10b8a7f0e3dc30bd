package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/decoder"
	"github.com/ben-blance/satish-image-format/internal/encoder"
	"github.com/ben-blance/satish-image-format/internal/fileio"
)

var (
	batchOutputDir  string
	batchFromSatish bool
	batchRecursive  bool
	batchGrayscale  bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Convert every matching file in a directory",
	Long: `Convert all supported images in a directory to SATISH format, or
with --from-satish all SATISH files back to PNG. Each file is attempted
independently; one failure never aborts the rest, and the per-file
failures are reported at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		var files []string
		if batchFromSatish {
			files = fileio.FindSatishFiles(dir, batchRecursive)
		} else {
			files = fileio.FindImages(dir, batchRecursive)
		}
		if len(files) == 0 {
			printWarning("No matching files found")
			return nil
		}
		printField("Files", fmt.Sprintf("%d", len(files)))

		op := func(path string) error {
			ext := fileio.SatishExtension
			if batchFromSatish {
				ext = ".png"
			}
			output, err := fileio.GenerateOutputPath(path, batchOutputDir, ext)
			if err != nil {
				return err
			}
			output = fileio.GetAvailableFilename(output)
			if batchFromSatish {
				return decoder.DecodeToImage(path, output)
			}
			return encoder.EncodeImage(path, output, encoder.Options{Grayscale: batchGrayscale})
		}

		successful, failures := fileio.BatchOperation(files, op)

		printSuccess(fmt.Sprintf("Converted: %d", len(successful)))
		for _, f := range failures {
			fmt.Println(errorStyle.Render("failed: " + f))
		}
		if len(failures) > 0 {
			return fmt.Errorf("%d of %d conversions failed", len(failures), len(files))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutputDir, "output-dir", "o", "", "Output directory (default: alongside each input)")
	batchCmd.Flags().BoolVar(&batchFromSatish, "from-satish", false, "Convert FROM SATISH format to PNG")
	batchCmd.Flags().BoolVarP(&batchRecursive, "recursive", "r", true, "Search directories recursively")
	batchCmd.Flags().BoolVar(&batchGrayscale, "grayscale", false, "Convert to grayscale before encoding")
	rootCmd.AddCommand(batchCmd)
}
