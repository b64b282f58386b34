package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
	"github.com/utkarsh5026/vcsgraph/pkg/commitlog"
	"github.com/utkarsh5026/vcsgraph/pkg/graph"
)

func newHeadsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heads [file|-]",
		Short: "List branch tips in lane order",
		Long: `List the heads (commits no other commit names as parent) in the order
their lanes were assigned.

For every head the table shows the first layout index it claimed, how many
commits its walk claimed, and how many commits are reachable from it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := loadGraph(cmd.Context(), opts, firstArg(args), cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			heads := lg.layout.Heads()
			if len(heads) == 0 {
				fmt.Fprintln(out, ui.Yellow("No heads"))
				return nil
			}

			claimed := make(map[int]int, len(heads))
			for node := 0; node < lg.graph().NodesCount(); node++ {
				claimed[lg.layout.OneOfHeadNodeIndex(node)]++
			}

			fmt.Fprintln(out, ui.Header(" Heads "))
			fmt.Fprintln(out)

			table := tablewriter.NewWriter(out)
			table.Header("Order", "Head", "Refs", "Start", "Claimed", "Reachable")

			dfs := graph.NewDFSUtil()
			for i, head := range heads {
				reachable := graph.ReachableNodes(lg.graph(), []int{head}, dfs)

				table.Append(
					strconv.Itoa(i),
					ui.Yellow(commitlog.ShortHash(lg.hashOf(head))),
					ui.Cyan(strings.Join(lg.refsOf(head), ", ")),
					strconv.Itoa(lg.layout.HeadStart(i)),
					strconv.Itoa(claimed[head]),
					strconv.Itoa(reachable.Count()),
				)
			}

			return table.Render()
		},
	}

	return cmd
}
