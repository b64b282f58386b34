package commitlog

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/utkarsh5026/vcsgraph/pkg/common/logger"
)

// RepositoryOptions controls LoadRepository
type RepositoryOptions struct {
	// MaxCount limits the number of commits read, 0 for no limit. Parents
	// of the last commits read become not-loaded.
	MaxCount int
}

// LoadRepository reads the history reachable from every ref of the git
// repository at path, newest committer time first.
func LoadRepository(ctx context.Context, path string, opts RepositoryOptions) (*Log, error) {
	log := logger.With("component", "commitlog", "repo", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	refs, err := collectRefs(repo)
	if err != nil {
		return nil, err
	}

	iter, err := repo.Log(&git.LogOptions{All: true, Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	var records []Record
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.MaxCount > 0 && len(records) >= opts.MaxCount {
			return storer.ErrStop
		}

		parents := make([]string, len(c.ParentHashes))
		for i, p := range c.ParentHashes {
			parents[i] = p.String()
		}

		records = append(records, Record{
			Hash:      c.Hash.String(),
			Parents:   parents,
			Timestamp: c.Committer.When.Unix(),
			Refs:      refs[c.Hash],
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits: %w", err)
	}

	log.Debug("loaded repository history", "commits", len(records), "refs", len(refs))
	return NewLog(records), nil
}

// collectRefs maps commit hashes to the names of HEAD, branches, remote
// branches and tags pointing at them
func collectRefs(repo *git.Repository) (map[plumbing.Hash][]string, error) {
	refs := make(map[plumbing.Hash][]string)

	if head, err := repo.Head(); err == nil {
		refs[head.Hash()] = append(refs[head.Hash()], "HEAD")
	}

	iter, err := repo.References()
	if err != nil {
		return nil, fmt.Errorf("list references: %w", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}

		name := ref.Name()
		hash := ref.Hash()
		switch {
		case name.IsBranch(), name.IsRemote():
		case name.IsTag():
			// Annotated tags point at a tag object, not the commit
			if tag, err := repo.TagObject(hash); err == nil {
				if c, err := tag.Commit(); err == nil {
					hash = c.Hash
				}
			}
		default:
			return nil
		}

		refs[hash] = append(refs[hash], name.Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk references: %w", err)
	}

	return refs, nil
}
