package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AnyUserName/imgfit-cli/internal/codec"
	"github.com/AnyUserName/imgfit-cli/internal/config"
	"github.com/AnyUserName/imgfit-cli/internal/fit"
	"github.com/AnyUserName/imgfit-cli/internal/hasher"
	"github.com/AnyUserName/imgfit-cli/internal/report"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	fitTarget     string
	fitCodec      string
	fitOut        string
	fitHashName   bool
	fitReport     bool
	fitConfigPath string
)

var fitCmd = &cobra.Command{
	Use:   "fit <image>",
	Short: "Re-encode one image so the output fits a byte budget",
	Long: `Decodes the input image (png, jpg, jpeg, webp, gif, bmp, tiff) and
re-encodes it with the chosen codec so the result fits the target size.

For jpeg and webp the search finds the highest quality that fits.
For png, which has no quality knob, the image is scaled down instead;
the result is best effort and may still exceed a very small target.`,
	Args: cobra.ExactArgs(1),
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVarP(&fitTarget, "target", "t", "", `maximum output size, e.g. "100KB" or "1.5MB"`)
	fitCmd.Flags().StringVarP(&fitCodec, "codec", "c", "", "output codec: jpeg, webp or png")
	fitCmd.Flags().StringVarP(&fitOut, "out", "o", "", "output file path (default: next to input)")
	fitCmd.Flags().BoolVar(&fitHashName, "hash-name", false, "content-addressed output name: <key>.<w>.<h>.<hash>.ext")
	fitCmd.Flags().BoolVar(&fitReport, "report", false, "write a JSON fit report next to the output")
	fitCmd.Flags().StringVar(&fitConfigPath, "config", "", "config file (default: ~/.imgfit.toml)")
	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	start := time.Now()

	cfg, err := config.Load(fitConfigPath)
	if err != nil {
		return err
	}
	codecName := cfg.Codec
	if fitCodec != "" {
		codecName = fitCodec
	}
	targetSpec := cfg.Target
	if fitTarget != "" {
		targetSpec = fitTarget
	}
	if targetSpec == "" {
		return fmt.Errorf("no target size: pass --target or set one in the config file")
	}
	target, err := humanize.ParseBytes(targetSpec)
	if err != nil || target == 0 {
		return fmt.Errorf("invalid target size %q", targetSpec)
	}

	registry := codec.NewRegistry()
	c := registry.Get(codecName)
	if c == nil {
		return fmt.Errorf("codec %q is not available (%s)", codecName, registry)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	logger.Debug("fit start",
		"input", inputPath, "size", len(data),
		"target", target, "codec", c.Name())

	fitter := fit.New(codec.StdDecoder{}, codec.LanczosResampler{})
	res, err := fitter.Process(data, int64(target), c)
	if err != nil {
		switch {
		case errors.Is(err, fit.ErrDecode):
			return fmt.Errorf("%s is not a decodable image", inputPath)
		case errors.Is(err, fit.ErrUnreachableBudget):
			return fmt.Errorf("cannot fit %s into %s as %s even at the lowest quality; try a smaller target margin or a different codec",
				inputPath, humanize.Bytes(target), c.Name())
		default:
			return err
		}
	}

	logger.Debug("fit done",
		"attempts", res.Attempts, "quality", res.Quality,
		"scale", res.Scale, "size", res.Size)

	outPath := fitOut
	if outPath == "" {
		outPath = defaultOutputPath(inputPath, cfg.OutDir, res, c.Extension())
	}
	if err := os.WriteFile(outPath, res.Data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if fitReport {
		if err := writeFitReport(inputPath, outPath, data, int64(target), res); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}

	over := ""
	if res.OverBudget {
		over = " (over budget)"
	}
	fmt.Printf("%s → %s  %dx%d  %s%s  in %s\n",
		inputPath, outPath, res.Width, res.Height,
		humanize.Bytes(uint64(res.Size)), over,
		time.Since(start).Round(time.Millisecond))

	return nil
}

// defaultOutputPath places the artifact in outDir. With --hash-name the
// filename is content-addressed: <key>.<w>.<h>.<hash>.ext
func defaultOutputPath(inputPath, outDir string, res *fit.Result, ext string) string {
	base := filepath.Base(inputPath)
	key := strings.TrimSuffix(base, filepath.Ext(base))

	name := fmt.Sprintf("%s.%s", key, ext)
	if fitHashName {
		contentHash := hasher.ContentHash(res.Data, 16)
		name = fmt.Sprintf("%s.%d.%d.%s.%s", key, res.Width, res.Height, contentHash[:8], ext)
	}
	return filepath.Join(outDir, name)
}

func writeFitReport(inputPath, outPath string, input []byte, target int64, res *fit.Result) error {
	src, err := codec.StdDecoder{}.Decode(input)
	if err != nil {
		return err
	}
	bounds := src.Bounds()

	r := report.New(version)
	r.Target = target
	r.Input = report.Input{
		Path:   inputPath,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Size:   int64(len(input)),
	}
	r.Output = report.Output{
		Path:       outPath,
		Codec:      res.Codec,
		Width:      res.Width,
		Height:     res.Height,
		Size:       res.Size,
		Quality:    res.Quality,
		Scale:      res.Scale,
		OverBudget: res.OverBudget,
		Attempts:   res.Attempts,
		Hash:       hasher.ContentHash(res.Data, 16),
	}
	return report.WriteJSON(r, outPath+".fit.json")
}
