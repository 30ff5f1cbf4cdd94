package scan

import (
	"sort"
	"sync"
)

// DupeMember identifies one file inside a duplicate group.
type DupeMember struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`
	// Name is the base name of the file.
	Name string `json:"name"`
	// Size is the file size in bytes.
	Size int64 `json:"size_bytes"`
}

// DuplicateGroup is a set of files sharing a content digest.
type DuplicateGroup struct {
	// Digest is the shared content digest.
	Digest string `json:"digest"`
	// Members lists the files in the group, sorted by path.
	Members []DupeMember `json:"members"`
	// WastedBytes is the space reclaimable by keeping a single member,
	// computed as member size times (member count - 1).
	WastedBytes int64 `json:"wasted_bytes"`
}

// dupeIndex groups files by content digest as the walk discovers them.
// Insertion is goroutine-safe; ordering is established by finalize.
type dupeIndex struct {
	mu     sync.Mutex
	groups map[string][]DupeMember
}

func newDupeIndex() *dupeIndex {
	return &dupeIndex{groups: make(map[string][]DupeMember)}
}

// insert appends member to the group for digest, creating it if absent.
func (x *dupeIndex) insert(digest string, member DupeMember) {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.groups[digest] = append(x.groups[digest], member)
}

// finalize returns only groups with at least two members. Members are
// sorted by path and the groups ordered by the size of their first member,
// largest first, with the digest as tie-breaker for stable output.
//
// Truncated hashing of large files can in principle place files of
// different sizes in one group; WastedBytes then derives from the first
// member's size.
func (x *dupeIndex) finalize() []DuplicateGroup {
	x.mu.Lock()
	defer x.mu.Unlock()

	out := make([]DuplicateGroup, 0, len(x.groups))

	for digest, members := range x.groups {
		if len(members) < 2 {
			continue
		}

		sort.Slice(members, func(i, j int) bool {
			return members[i].Path < members[j].Path
		})

		out = append(out, DuplicateGroup{
			Digest:      digest,
			Members:     members,
			WastedBytes: members[0].Size * int64(len(members)-1),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Members[0].Size != out[j].Members[0].Size {
			return out[i].Members[0].Size > out[j].Members[0].Size
		}

		return out[i].Digest < out[j].Digest
	})

	return out
}
