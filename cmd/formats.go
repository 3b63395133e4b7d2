package cmd

import (
	"fmt"

	"github.com/AnyUserName/imgfit-cli/internal/codec"
	"github.com/AnyUserName/imgfit-cli/internal/fit"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available output codecs",
	Run: func(cmd *cobra.Command, args []string) {
		registry := codec.NewRegistry()
		for _, name := range registry.Available() {
			c := registry.Get(name)
			strategy := "quality search"
			if c.Class() == fit.ClassLossless {
				strategy = "dimension search"
			}
			fmt.Printf("%-6s %s\n", name, strategy)
		}
		if registry.Get("webp") == nil {
			fmt.Println("webp   unavailable — install cwebp (brew install webp / apt install webp)")
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
