package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/stegpng/pkg/chunk"
)

var encodeOutput string

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <file> <type> <message>",
	Short: "Hide a message in a PNG file",
	Long: `Hide a message in a PNG file by appending a chunk with the given
type code. The chunk is inserted before the trailing IEND chunk so image
viewers keep rendering the file normally.

Example:
  stegpng encode image.png ruSt "meet at dawn"`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		out := encodeOutput
		if out == "" {
			out = args[0]
		}

		if err := encodeMessage(args[0], out, args[1], args[2], cfg.Backup); err != nil {
			fmt.Printf("Error hiding message: %v\n", err)
			return
		}

		fmt.Printf("Hid %d byte message in a '%s' chunk of %s\n", len(args[2]), args[1], out)
	},
}

func encodeMessage(path, out, code, message string, backup bool) error {
	typ, err := chunk.TypeFromString(code)
	if err != nil {
		return err
	}

	p, original, err := loadPNG(path)
	if err != nil {
		return err
	}

	p.AppendChunk(chunk.New(typ, []byte(message)))

	if backup && out == path {
		if _, err := backupFile(path, original); err != nil {
			return err
		}
	}

	return os.WriteFile(out, p.Bytes(), 0600)
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Write the result to this path instead of in place")
}
