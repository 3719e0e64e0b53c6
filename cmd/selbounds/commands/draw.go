package commands

import (
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/selbounds/frame"
	"github.com/gogpu/selbounds/internal/debugdraw"
)

func newDrawCmd() *cobra.Command {
	var (
		output  string
		frameNo int
		scale   int
		labels  bool
	)
	cmd := &cobra.Command{
		Use:   "draw <scenario.toml>",
		Short: "Render the chunks and handles of one frame to a PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			want := frameNo
			if want <= 0 || want > len(s.Frames) {
				want = len(s.Frames)
			}
			var img *image.RGBA
			err = s.Play(engine, func(i int, f *frame.Frame) error {
				if i+1 == want {
					img = debugdraw.Draw(f.Layout().Root(), f.ContentPaintChunks(), f.Host().Handles(),
						f.Layout().Viewport(), debugdraw.Options{Scale: scale, Labels: labels})
				}
				return nil
			})
			if err != nil {
				return err
			}

			file, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := debugdraw.Encode(file, img); err != nil {
				file.Close()
				return fmt.Errorf("encode %s: %w", output, err)
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "frame %d saved to %s (%dx%d)\n", want, output, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "selbounds.png", "output file")
	cmd.Flags().IntVar(&frameNo, "frame", 0, "frame to draw, 1-based; the last frame by default")
	cmd.Flags().IntVar(&scale, "scale", 2, "pixels per layout pixel")
	cmd.Flags().BoolVar(&labels, "labels", true, "label chunks with their ids")
	return cmd
}
