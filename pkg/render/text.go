package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box drawing characters for graph visualization
const (
	LineVertical = "│"
	LineDangling = "┆"

	// Commit markers
	CommitNormal   = "●"
	CommitMerge    = "◎"
	CommitInitial  = "◆"
	CommitTruncate = "◇"
)

// Colors for different lanes
var laneColors = []lipgloss.Color{
	lipgloss.Color("#00D7FF"), // Cyan
	lipgloss.Color("#AF87FF"), // Purple
	lipgloss.Color("#00FF87"), // Green
	lipgloss.Color("#FFD700"), // Gold
	lipgloss.Color("#FF5F87"), // Pink
	lipgloss.Color("#5FD7FF"), // Light Blue
	lipgloss.Color("#FFD787"), // Light Orange
	lipgloss.Color("#87FFD7"), // Aqua
}

// LabelFunc returns the text printed after the graph prefix of a node
type LabelFunc func(node int) string

// TextRenderer renders rows as text with one colour per layout index
type TextRenderer struct {
	rows   []Row
	width  int
	colors []lipgloss.Color
	plain  bool
}

// TextOption configures a TextRenderer
type TextOption func(*TextRenderer)

// WithPlain disables colours
func WithPlain() TextOption {
	return func(r *TextRenderer) {
		r.plain = true
	}
}

// WithLaneColors replaces the default lane palette
func WithLaneColors(colors []string) TextOption {
	return func(r *TextRenderer) {
		if len(colors) == 0 {
			return
		}
		r.colors = make([]lipgloss.Color, len(colors))
		for i, c := range colors {
			r.colors[i] = lipgloss.Color(c)
		}
	}
}

// NewTextRenderer creates a renderer over precomputed rows
func NewTextRenderer(rows []Row, opts ...TextOption) *TextRenderer {
	r := &TextRenderer{
		rows:   rows,
		width:  Width(rows),
		colors: laneColors,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders up to limit rows (all rows when limit <= 0), each followed
// by its label
func (r *TextRenderer) Render(label LabelFunc, limit int) string {
	var output strings.Builder

	count := len(r.rows)
	if limit > 0 && limit < count {
		count = limit
	}

	for i := 0; i < count; i++ {
		output.WriteString(r.Prefix(i))
		if label != nil {
			if text := label(r.rows[i].Node); text != "" {
				output.WriteString(" ")
				output.WriteString(text)
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}

// Prefix builds the graph part of a row, padded to the widest row
func (r *TextRenderer) Prefix(rowIndex int) string {
	row := r.rows[rowIndex]

	var line strings.Builder
	for col := 0; col < r.width; col++ {
		if col > 0 {
			line.WriteString(" ")
		}

		if col >= len(row.Elements) {
			line.WriteString(" ")
			continue
		}

		e := row.Elements[col]
		line.WriteString(r.colorize(r.charFor(row, e), r.laneColor(e.LayoutIndex)))
	}

	return line.String()
}

func (r *TextRenderer) charFor(row Row, e Element) string {
	if e.Kind == ElementEdge {
		if e.Down < 0 {
			return LineDangling
		}
		return LineVertical
	}

	switch {
	case row.HasNotLoaded:
		return CommitTruncate
	case row.IsInitial:
		return CommitInitial
	case row.IsMerge:
		return CommitMerge
	default:
		return CommitNormal
	}
}

// laneColor returns the color for a layout index
func (r *TextRenderer) laneColor(layoutIndex int) lipgloss.Color {
	if layoutIndex < 0 {
		layoutIndex = -layoutIndex
	}
	return r.colors[layoutIndex%len(r.colors)]
}

// colorize applies color to text
func (r *TextRenderer) colorize(text string, color lipgloss.Color) string {
	if r.plain {
		return text
	}
	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(text)
}

// Describe returns a one-line summary of a row, used by verbose output
func Describe(row Row) string {
	kind := "commit"
	switch {
	case row.IsInitial:
		kind = "root"
	case row.IsMerge:
		kind = "merge"
	}
	return fmt.Sprintf("node %d (%s) column %d of %d", row.Node, kind, row.NodeColumn, len(row.Elements))
}
