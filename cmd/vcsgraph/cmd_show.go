package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
	"github.com/utkarsh5026/vcsgraph/pkg/commitlog"
	"github.com/utkarsh5026/vcsgraph/pkg/graph"
	"github.com/utkarsh5026/vcsgraph/pkg/render"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <commit> [file|-]",
		Short: "Show graph details of one commit",
		Long: `Show where a commit sits in the permanent graph: its node index,
whether its edge to the next commit is implied, its children and parents,
and the lane it was given.

The commit may be abbreviated as long as the prefix is unique.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 1 {
				input = args[1]
			}

			lg, err := loadGraph(cmd.Context(), opts, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			node, err := lg.resolveNode(args[0])
			if err != nil {
				return err
			}

			showNode(cmd.OutOrStdout(), lg, node)
			return nil
		},
	}

	return cmd
}

func showNode(out io.Writer, lg *loadedGraph, node int) {
	g := lg.graph()
	l := lg.layout
	li := l.LayoutIndex(node)
	head := l.OneOfHeadNodeIndex(node)

	fmt.Fprintf(out, "%s %s\n", ui.Green(ui.IconCommit), ui.Yellow(lg.hashOf(node)))
	if refs := lg.refsOf(node); len(refs) > 0 {
		fmt.Fprintf(out, "Refs:      %s\n", ui.Cyan(strings.Join(refs, ", ")))
	}
	fmt.Fprintf(out, "Node:      %d of %d\n", node, g.NodesCount())
	fmt.Fprintf(out, "Simple:    %t\n", g.IsSimple(node))
	fmt.Fprintf(out, "Children:  %s\n", lg.formatNodes(g.UpNodes(node)))
	fmt.Fprintf(out, "Parents:   %s\n", lg.formatEdges(node, g.DownEdges(node)))
	fmt.Fprintf(out, "Layout:    %d (head %s, lanes from %d)\n",
		li, commitlog.ShortHash(lg.hashOf(head)), l.StartLayout(li))

	rows := render.Rows(g, l)
	fmt.Fprintf(out, "Row:       %s\n", render.Describe(rows[node]))
}

func (lg *loadedGraph) formatNodes(nodes []int) string {
	if len(nodes) == 0 {
		return "-"
	}
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = commitlog.ShortHash(lg.hashOf(n))
	}
	return strings.Join(parts, " ")
}

func (lg *loadedGraph) formatEdges(node int, edges []graph.EdgeTarget) string {
	if len(edges) == 0 {
		return "-"
	}

	missing := lg.result.NotLoaded[lg.graph().HashIndex(node)]
	parts := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.Resolved() {
			parts = append(parts, commitlog.ShortHash(lg.hashOf(e.Node)))
			continue
		}

		name := "?"
		if len(missing) > 0 {
			name = commitlog.ShortHash(lg.log.Storage.Hash(missing[0]))
			missing = missing[1:]
		}
		parts = append(parts, ui.Red(name+" (not loaded)"))
	}
	return strings.Join(parts, " ")
}
