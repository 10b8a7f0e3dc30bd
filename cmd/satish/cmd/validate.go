package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a SATISH file",
	Long: `Run every integrity check against a SATISH file and report all
findings: header field violations, payload size mismatches, and corrupt
hex data. The exit code is non-zero when the file is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report := validator.ValidateFile(args[0])

		printField("File", report.FilePath)
		for _, w := range report.Warnings {
			printWarning("warning: " + w)
		}
		for _, e := range report.Errors {
			fmt.Println(errorStyle.Render("error: " + e))
		}

		if !report.Valid {
			return fmt.Errorf("%s is not a valid SATISH file", report.FilePath)
		}

		printSuccess("Valid SATISH file")
		printField("Dimensions", fmt.Sprintf("%dx%d", report.Details.Width, report.Details.Height))
		printField("Pixels", fmt.Sprintf("%d", report.Details.PixelCount))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
