package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
	"github.com/utkarsh5026/vcsgraph/pkg/render"
)

func newLogCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log [file|-]",
		Short: "Draw the commit graph",
		Long: `Draw the commit graph with one lane per layout index.

Markers:
  ●  commit        ◎  merge
  ◆  root commit   ◇  commit with parents outside the loaded history
  │  edge          ┆  edge to a parent outside the loaded history

Examples:
  vcsgraph log history.log
  git log --all --topo-order --format='%H%x09%ct%x09%P%x09%D' | vcsgraph log -
  vcsgraph log --repo . -n 200`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := loadGraph(cmd.Context(), opts, firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if lg.graph().NodesCount() == 0 {
				fmt.Fprintln(out, ui.Yellow("No commits"))
				return nil
			}

			if limit == 0 {
				limit = opts.cfg.Render.MaxRows
			}

			var rendererOpts []render.TextOption
			if !opts.cfg.Render.Color {
				rendererOpts = append(rendererOpts, render.WithPlain())
			}
			rendererOpts = append(rendererOpts, render.WithLaneColors(opts.cfg.Render.LaneColors))

			renderer := render.NewTextRenderer(render.Rows(lg.graph(), lg.layout), rendererOpts...)
			fmt.Fprint(out, renderer.Render(lg.label, limit))

			if n := len(lg.result.NotLoaded); n > 0 {
				fmt.Fprintf(out, "%s %d commit(s) have parents outside the loaded history\n", ui.Yellow(ui.IconWarning), n)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most this many commits")

	return cmd
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
