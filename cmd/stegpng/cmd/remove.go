package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:   "remove <file> [type]",
	Short: "Remove a hidden chunk from a PNG file",
	Long: `Remove the first chunk with the given type code and rewrite the
file in place. Without a type argument the configured default type is
removed.

Example:
  stegpng remove image.png ruSt`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		code := cfg.DefaultType
		if len(args) == 2 {
			code = args[1]
		}

		if err := removeMessage(args[0], code, cfg.Backup); err != nil {
			fmt.Printf("Error removing chunk: %v\n", err)
			return
		}

		fmt.Printf("Removed '%s' chunk from %s\n", code, args[0])
	},
}

func removeMessage(path, code string, backup bool) error {
	p, original, err := loadPNG(path)
	if err != nil {
		return err
	}

	if _, err := p.RemoveFirstChunk(code); err != nil {
		return err
	}

	if backup {
		if _, err := backupFile(path, original); err != nil {
			return err
		}
	}

	return os.WriteFile(path, p.Bytes(), 0600)
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
