package commitlog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/utkarsh5026/vcsgraph/pkg/common/logger"
)

const maxLineSize = 1 << 20

// Parse reads a commit log.
//
// Tab-separated lines carry hash, committer time, space-separated parents
// and ref decorations; trailing fields may be omitted or empty. Lines
// without tabs are read as a hash followed by its parents. Blank lines and
// lines starting with '#' are skipped.
func Parse(ctx context.Context, r io.Reader) (*Log, error) {
	log := logger.With("component", "commitlog")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		record, err := parseLine(line, lineNo)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	log.Debug("parsed commit log", "commits", len(records), "lines", lineNo)
	return NewLog(records), nil
}

func parseLine(line string, lineNo int) (Record, error) {
	if !strings.Contains(line, "\t") {
		fields := strings.Fields(line)
		if err := validateHashes(fields, lineNo); err != nil {
			return Record{}, err
		}
		return Record{Hash: fields[0], Parents: fields[1:]}, nil
	}

	fields := strings.Split(line, "\t")
	record := Record{Hash: strings.TrimSpace(fields[0])}
	if err := validateHashes([]string{record.Hash}, lineNo); err != nil {
		return Record{}, err
	}

	if len(fields) > 1 {
		if ts := strings.TrimSpace(fields[1]); ts != "" {
			v, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				return Record{}, NewParseError(lineNo, fmt.Sprintf("invalid timestamp '%s'", ts))
			}
			record.Timestamp = v
		}
	}

	if len(fields) > 2 {
		record.Parents = strings.Fields(fields[2])
		if err := validateHashes(record.Parents, lineNo); err != nil {
			return Record{}, err
		}
	}

	if len(fields) > 3 {
		record.Refs = ParseDecorations(fields[3])
	}

	return record, nil
}

// ParseDecorations splits a %D decoration such as
// "HEAD -> main, origin/main, tag: v1.0" into ref names
func ParseDecorations(decoration string) []string {
	var refs []string
	for _, part := range strings.Split(decoration, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if head, branch, ok := strings.Cut(part, " -> "); ok {
			refs = append(refs, strings.TrimSpace(head), strings.TrimSpace(branch))
			continue
		}

		part = strings.TrimPrefix(part, "tag: ")
		refs = append(refs, part)
	}
	return refs
}

func validateHashes(hashes []string, lineNo int) error {
	if len(hashes) == 0 || hashes[0] == "" {
		return NewParseError(lineNo, "missing commit hash")
	}

	for _, h := range hashes {
		if !isHex(h) {
			return NewParseError(lineNo, fmt.Sprintf("invalid hash '%s'", h))
		}
	}
	return nil
}

func isHex(s string) bool {
	if len(s) < 4 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
