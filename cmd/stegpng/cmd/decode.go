package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/stegpng/pkg/png"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <file> [type]",
	Short: "Recover a hidden message from a PNG file",
	Long: `Recover a hidden message from a PNG file. The first chunk with the
given type code is decoded as UTF-8 text. Without a type argument the
configured default type is searched.

Example:
  stegpng decode image.png ruSt`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		code := cfg.DefaultType
		if len(args) == 2 {
			code = args[1]
		}

		message, err := decodeMessage(args[0], code)
		if err != nil {
			fmt.Printf("Error recovering message: %v\n", err)
			return
		}

		fmt.Printf("%s\n", message)
	},
}

func decodeMessage(path, code string) (string, error) {
	p, _, err := loadPNG(path)
	if err != nil {
		return "", err
	}

	c := p.ChunkByType(code)
	if c == nil {
		return "", png.ErrChunkNotFound
	}

	return c.DataAsString()
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
