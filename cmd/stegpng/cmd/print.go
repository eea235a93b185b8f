package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// printCmd represents the print command
var printCmd = &cobra.Command{
	Use:   "print <file>",
	Short: "Print every chunk of a PNG file",
	Long: `Print a diagnostic summary of every chunk in a PNG file: length,
type code, payload size and CRC.

Example:
  stegpng print image.png`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		listing, err := listChunks(args[0])
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			return
		}

		fmt.Print(listing)
	},
}

func listChunks(path string) (string, error) {
	p, _, err := loadPNG(path)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d chunks\n", path, len(p.Chunks()))
	for _, c := range p.Chunks() {
		sb.WriteString(c.String())
	}
	return sb.String(), nil
}

func init() {
	rootCmd.AddCommand(printCmd)
}
