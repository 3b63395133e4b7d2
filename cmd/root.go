package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	verbose bool
	logger  hclog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "imgfit",
	Short: "Re-encode images to fit a byte budget",
	Long: `imgfit — re-encodes a raster image so the output fits a maximum
file size, trading quality (jpeg, webp) or pixel dimensions (png)
for size as needed.

The quality codecs are binary-searched for the highest quality that
still fits; png is shrunk geometrically until it fits or hits the
10% scale floor.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := hclog.Warn
		if verbose {
			level = hclog.Debug
		}
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "imgfit",
			Output: os.Stderr,
			Level:  level,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"imgfit %s (%s/%s, %s)\n",
		version, runtime.GOOS, runtime.GOARCH, runtime.Version(),
	))
}
