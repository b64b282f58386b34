// Package commitlog loads commit history into the integer form used by the
// permanent graph.
//
// Histories come either from text produced by
//
//	git log --all --topo-order --format='%H%x09%ct%x09%P%x09%D'
//
// or straight from a repository on disk. Commit hashes are interned in a
// HashStorage so the graph only ever sees dense integer hash indices.
package commitlog

import (
	"github.com/utkarsh5026/vcsgraph/pkg/graph"
)

// Record is one commit as read from a log
type Record struct {
	// Hash is the full commit hash
	Hash string

	// Parents are the parent hashes, first parent first
	Parents []string

	// Timestamp is the committer time in unix seconds, 0 when unknown
	Timestamp int64

	// Refs are the branch, tag and HEAD names pointing at the commit
	Refs []string
}

// Log is an ordered commit list with its hash storage
type Log struct {
	Records []Record
	Storage *HashStorage
}

// NewLog interns every hash of records into a fresh storage
func NewLog(records []Record) *Log {
	storage := NewHashStorage()
	for _, r := range records {
		storage.Intern(r.Hash)
	}
	for _, r := range records {
		for _, p := range r.Parents {
			storage.Intern(p)
		}
	}

	return &Log{
		Records: records,
		Storage: storage,
	}
}

// Len returns the number of commits
func (l *Log) Len() int {
	return len(l.Records)
}

// Commits converts the records to graph commits, in log order
func (l *Log) Commits() []graph.Commit {
	commits := make([]graph.Commit, len(l.Records))
	for i, r := range l.Records {
		parents := make([]int, len(r.Parents))
		for k, p := range r.Parents {
			parents[k] = l.Storage.Intern(p)
		}
		commits[i] = graph.Commit{
			Hash:      l.Storage.Intern(r.Hash),
			Parents:   parents,
			Timestamp: r.Timestamp,
		}
	}
	return commits
}

// RefsByHash maps hash indices to the ref names pointing at them
func (l *Log) RefsByHash() map[int][]string {
	refs := make(map[int][]string)
	for _, r := range l.Records {
		if len(r.Refs) == 0 {
			continue
		}
		idx := l.Storage.Intern(r.Hash)
		refs[idx] = append(refs[idx], r.Refs...)
	}
	return refs
}
