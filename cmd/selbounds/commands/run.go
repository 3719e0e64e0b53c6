package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/selbounds/compositor"
	"github.com/gogpu/selbounds/frame"
	"github.com/gogpu/selbounds/paint"
)

func newRunCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "run <scenario.toml>",
		Short: "Run a scenario and print the chunks of every frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return s.Play(engine, func(i int, f *frame.Frame) error {
				if asJSON {
					return printJSON(out, f)
				}
				printFrame(out, i, f)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the compositor handoff of each frame as one JSON line")
	return cmd
}

func printJSON(w io.Writer, f *frame.Frame) error {
	line, err := compositor.AppendJSON(nil, f.ContentPaintChunks())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", line)
	return err
}

func printFrame(w io.Writer, i int, f *frame.Frame) {
	res := f.LastPaint()
	fmt.Fprintf(w, "frame %d (%s, generation %d)\n", i+1, f.Engine(), res.Chunks.Generation())
	for _, c := range res.Chunks.All() {
		fmt.Fprintf(w, "  %-18s origin=%v inval=%s", c.ID, c.Origin.Round(), c.Invalidation)
		if d := c.LayerSelectionData; d != nil {
			if b, ok := d.Start.Get(); ok {
				fmt.Fprintf(w, " start=%v", b)
			}
			if b, ok := d.End.Get(); ok {
				fmt.Fprintf(w, " end=%v", b)
			}
		}
		fmt.Fprintln(w)
	}
	if len(res.SelectionInvalidations) > 0 {
		fmt.Fprintf(w, "  selection invalidations: %s\n", joinIDs(res.SelectionInvalidations))
	}
}

func joinIDs(ids []paint.ChunkID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}
