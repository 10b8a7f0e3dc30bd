package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ben-blance/satish-image-format/internal/fileio"
)

var (
	listType      string
	listRecursive bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <directory>",
	Short: "List images and SATISH files in a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		var files []string
		switch listType {
		case "all":
			files = fileio.FindFiles(dir, "*", listRecursive)
		case "images":
			files = fileio.FindImages(dir, listRecursive)
		case "satish":
			files = fileio.FindSatishFiles(dir, listRecursive)
		default:
			return fmt.Errorf("unknown type filter: %s (want all, images, or satish)", listType)
		}

		if len(files) == 0 {
			printWarning("No matching files found")
			return nil
		}

		for _, f := range files {
			info, err := fileio.Stat(f)
			if err != nil {
				fmt.Println(errorStyle.Render(fmt.Sprintf("%s: %v", f, err)))
				continue
			}
			kind := "other"
			if info.IsSatish {
				kind = "satish"
			} else if info.IsImage {
				kind = "image"
			}
			fmt.Printf("%-8s %10s  %s\n", kind, info.SizeHuman, f)
		}
		printField("Total", fmt.Sprintf("%d files", len(files)))
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "all", "File type filter (all, images, satish)")
	listCmd.Flags().BoolVarP(&listRecursive, "recursive", "r", true, "Search directories recursively")
	rootCmd.AddCommand(listCmd)
}
