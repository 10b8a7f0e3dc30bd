// Package cmd implements the satish command-line interface: converting
// images to and from the SATISH container format, inspecting, validating,
// and batch-processing files.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
)

// Version information, injected from main via SetVersionInfo.
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// SetVersionInfo stores build metadata for the version command.
func SetVersionInfo(v, bt, gc string) {
	version, buildTime, gitCommit = v, bt, gc
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satish",
	Short: "SATISH image format converter and toolkit",
	Long: `satish converts standard raster images to and from the SATISH
container format: a 10-byte validated header followed by the pixel data
as hexadecimal RGB.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func printSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

func printWarning(msg string) {
	fmt.Println(warnStyle.Render(msg))
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), value)
}
