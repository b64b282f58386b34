package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/utkarsh5026/vcsgraph/cmd/ui"
	"github.com/utkarsh5026/vcsgraph/pkg/commitlog"
	"github.com/utkarsh5026/vcsgraph/pkg/config"
	"github.com/utkarsh5026/vcsgraph/pkg/graph"
	"github.com/utkarsh5026/vcsgraph/pkg/layout"
)

// loadedGraph is a history with its permanent graph and layout
type loadedGraph struct {
	source string
	log    *commitlog.Log
	result *graph.BuildResult
	layout *layout.Layout
	refs   map[int][]string

	// timestamps is indexed by node
	timestamps []int64
}

func (lg *loadedGraph) graph() *graph.PermanentGraph {
	return lg.result.Graph
}

// readLog picks the history source: --repo, a file, or "-" for stdin
func readLog(ctx context.Context, opts *rootOptions, input string, stdin io.Reader) (*commitlog.Log, string, error) {
	if opts.repoPath != "" && input == "" {
		log, err := commitlog.LoadRepository(ctx, opts.repoPath, commitlog.RepositoryOptions{MaxCount: opts.maxCount})
		if err != nil {
			return nil, "", err
		}
		return log, opts.repoPath, nil
	}

	switch input {
	case "":
		return nil, "", fmt.Errorf("no history given: pass a log file, '-' for stdin, or --repo")
	case "-":
		log, err := commitlog.Parse(ctx, stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse stdin: %w", err)
		}
		return log, "stdin", nil
	default:
		f, err := os.Open(input)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()

		log, err := commitlog.Parse(ctx, f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to parse %s: %w", input, err)
		}
		return log, input, nil
	}
}

// loadGraph reads a history and builds its graph and layout
func loadGraph(ctx context.Context, opts *rootOptions, input string, stdin io.Reader) (*loadedGraph, error) {
	log, source, err := readLog(ctx, opts, input, stdin)
	if err != nil {
		return nil, err
	}
	return buildGraph(log, source, opts.cfg)
}

func buildGraph(log *commitlog.Log, source string, cfg *config.Config) (*loadedGraph, error) {
	commits := graph.FixDuplicateParents(log.Commits())

	result, err := graph.Build(commits, graph.NewFlags(len(commits)))
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}

	lg := &loadedGraph{
		source: source,
		log:    log,
		result: result,
		refs:   log.RefsByHash(),

		timestamps: graph.Timestamps(commits),
	}
	lg.layout = layout.Build(result.Graph, lg.headComparator(cfg.Layout), graph.NewDFSUtil())

	return lg, nil
}

func (lg *loadedGraph) headComparator(cfg config.LayoutConfig) layout.HeadComparator {
	byTime := layout.ByTimestamp(lg.timestamps)

	switch cfg.HeadOrder {
	case config.HeadOrderIndex:
		return layout.ByNodeIndex
	case config.HeadOrderTime:
		return byTime
	default:
		return layout.ByRefPriority(func(node int) int {
			return lg.refPriority(node, cfg.PreferredRefs)
		}, byTime)
	}
}

// refPriority ranks a node by its best preferred ref; other named nodes come
// next and unnamed tips last
func (lg *loadedGraph) refPriority(node int, preferred []string) int {
	refs := lg.refsOf(node)
	if len(refs) == 0 {
		return len(preferred) + 1
	}

	best := len(preferred)
	for _, ref := range refs {
		if i := slices.Index(preferred, ref); i >= 0 && i < best {
			best = i
		}
	}
	return best
}

func (lg *loadedGraph) refsOf(node int) []string {
	return lg.refs[lg.graph().HashIndex(node)]
}

func (lg *loadedGraph) hashOf(node int) string {
	return lg.log.Storage.Hash(lg.graph().HashIndex(node))
}

// resolveNode finds the node of a full or abbreviated hash
func (lg *loadedGraph) resolveNode(hash string) (int, error) {
	idx, err := lg.log.Storage.LookupPrefix(hash)
	if err != nil {
		return -1, err
	}

	node, ok := lg.graph().NodeIndex(idx)
	if !ok {
		return -1, fmt.Errorf("commit '%s' is referenced but not loaded", hash)
	}
	return node, nil
}

// label formats a node for the log view
func (lg *loadedGraph) label(node int) string {
	parts := []string{ui.Yellow(commitlog.ShortHash(lg.hashOf(node)))}

	if refs := lg.refsOf(node); len(refs) > 0 {
		parts = append(parts, ui.Cyan("("+strings.Join(refs, ", ")+")"))
	}

	if ts := lg.timestamps[node]; ts > 0 {
		parts = append(parts, ui.Magenta(time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")))
	}

	return strings.Join(parts, " ")
}
