package commitlog

import "strings"

// HashStorage interns commit hashes as dense, non-negative hash indices.
//
// Hashes are compared case-insensitively. Not safe for concurrent writes.
type HashStorage struct {
	indexByHash map[string]int
	hashes      []string
}

// NewHashStorage creates an empty HashStorage
func NewHashStorage() *HashStorage {
	return &HashStorage{
		indexByHash: make(map[string]int),
	}
}

// Intern returns the index of hash, assigning the next free index the first
// time the hash is seen
func (s *HashStorage) Intern(hash string) int {
	hash = normalizeHash(hash)
	if idx, ok := s.indexByHash[hash]; ok {
		return idx
	}

	idx := len(s.hashes)
	s.hashes = append(s.hashes, hash)
	s.indexByHash[hash] = idx
	return idx
}

// Lookup returns the index of a hash without interning it
func (s *HashStorage) Lookup(hash string) (int, bool) {
	idx, ok := s.indexByHash[normalizeHash(hash)]
	return idx, ok
}

// LookupPrefix resolves an abbreviated hash. It fails when the prefix is
// unknown or ambiguous.
func (s *HashStorage) LookupPrefix(prefix string) (int, error) {
	prefix = normalizeHash(prefix)
	if idx, ok := s.indexByHash[prefix]; ok {
		return idx, nil
	}

	found := -1
	for i, h := range s.hashes {
		if !strings.HasPrefix(h, prefix) {
			continue
		}
		if found >= 0 {
			return -1, NewUnknownHashError(prefix, true)
		}
		found = i
	}

	if found < 0 {
		return -1, NewUnknownHashError(prefix, false)
	}
	return found, nil
}

// Hash returns the hash string of an index, or "" when unknown
func (s *HashStorage) Hash(idx int) string {
	if idx < 0 || idx >= len(s.hashes) {
		return ""
	}
	return s.hashes[idx]
}

// Len returns the number of interned hashes
func (s *HashStorage) Len() int {
	return len(s.hashes)
}

func normalizeHash(hash string) string {
	return strings.ToLower(strings.TrimSpace(hash))
}

// ShortHash returns the first 7 characters of a hash
func ShortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
