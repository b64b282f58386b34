package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
	"github.com/utkarsh5026/vcsgraph/pkg/graph"
)

func newMergeBaseCmd(opts *rootOptions) *cobra.Command {
	var isAncestor bool

	cmd := &cobra.Command{
		Use:   "merge-base <commit> <commit> [file|-]",
		Short: "Find the best common ancestors of two commits",
		Long: `Find the best common ancestors of two commits within the loaded history.

With --is-ancestor, report whether the first commit is an ancestor of the
second instead; the command fails when it is not.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) > 2 {
				input = args[2]
			}

			lg, err := loadGraph(cmd.Context(), opts, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a, err := lg.resolveNode(args[0])
			if err != nil {
				return err
			}
			b, err := lg.resolveNode(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			dfs := graph.NewDFSUtil()

			if isAncestor {
				if !graph.IsAncestor(lg.graph(), a, b, dfs) {
					return fmt.Errorf("%s is not an ancestor of %s", args[0], args[1])
				}
				fmt.Fprintf(out, "%s %s is an ancestor of %s\n", ui.Green(ui.IconCommit), args[0], args[1])
				return nil
			}

			bases := graph.MergeBases(lg.graph(), a, b, dfs)
			if len(bases) == 0 {
				return fmt.Errorf("no common ancestor of %s and %s in the loaded history", args[0], args[1])
			}
			for _, base := range bases {
				fmt.Fprintln(out, lg.hashOf(base))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&isAncestor, "is-ancestor", false, "Check whether the first commit is an ancestor of the second")

	return cmd
}
