// Command bjpeg encodes a PPM/PGM raster to a baseline JPEG file.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/corfelix/bjpeg"
	"github.com/corfelix/bjpeg/ppm"
)

var (
	inPath    string
	outPath   string
	quality   int
	subsample string
	dctName   string
)

func main() {
	root := &cobra.Command{
		Use:   "bjpeg",
		Short: "Encode a PPM/PGM image to baseline JPEG",
		RunE:  run,
	}
	root.Flags().StringVarP(&inPath, "input", "i", "", "input PPM/PGM file path (required)")
	root.Flags().StringVarP(&outPath, "output", "o", "", "output JPEG file path (required)")
	root.Flags().IntVarP(&quality, "quality", "q", bjpeg.DefaultQuality, "quality, 1-100")
	root.Flags().StringVar(&subsample, "subsample", "420", "chroma subsampling: 420 or 444")
	root.Flags().StringVar(&dctName, "dct", "direct", "forward DCT variant: direct, separated, or arai")
	_ = root.MarkFlagRequired("input")
	_ = root.MarkFlagRequired("output")

	if err := root.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	sub, err := parseSubsample(subsample)
	if err != nil {
		return err
	}
	variant, err := parseDCTVariant(dctName)
	if err != nil {
		return err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	raster, err := ppm.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}

	var img *bjpeg.Image
	switch raster.Space {
	case ppm.ColorGray:
		img, err = bjpeg.GrayToImage(raster.Pix, raster.Width, raster.Height)
	default:
		img, err = bjpeg.RGBToImage(raster.Pix, raster.Width, raster.Height, sub)
	}
	if err != nil {
		return fmt.Errorf("building image: %w", err)
	}

	tmp := outPath + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := bjpeg.Encode(out, img, &bjpeg.Options{Quality: quality, DCT: variant}); err != nil {
		out.Close()
		os.Remove(tmp)
		return fmt.Errorf("encoding: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing output: %w", err)
	}
	// Encode the whole file into a temp path and rename into place at the
	// end, so a failed encode never leaves a truncated file at outPath.
	if err := os.Rename(tmp, outPath); err != nil {
		return fmt.Errorf("committing output: %w", err)
	}

	fmt.Fprintln(os.Stdout, color.New(color.FgGreen).Sprintf("wrote %s (%dx%d, quality %d, %s)", outPath, raster.Width, raster.Height, quality, variant))
	return nil
}

func parseSubsample(s string) (bjpeg.Subsample, error) {
	switch s {
	case "420":
		return bjpeg.Subsample420, nil
	case "444":
		return bjpeg.Subsample444, nil
	default:
		return 0, fmt.Errorf("unknown subsample %q, want 420 or 444", s)
	}
}

func parseDCTVariant(s string) (bjpeg.DCTVariant, error) {
	switch s {
	case "direct":
		return bjpeg.DCTDirect, nil
	case "separated":
		return bjpeg.DCTSeparated, nil
	case "arai":
		return bjpeg.DCTArai, nil
	default:
		return 0, fmt.Errorf("unknown dct variant %q, want direct, separated, or arai", s)
	}
}
