package scan

import (
	"path/filepath"
	"sort"
	"sync"
)

// collector accumulates records from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu          sync.Mutex // Protect concurrent access
	root        string
	files       []FileRecord
	folders     map[string]*FolderRecord
	failed      map[string]struct{}
	extStats    map[string]ExtStat
	dupes       *dupeIndex
	errs        *errorLog
	fileCount   int64
	folderCount int64
}

// newCollector creates a collector for a scan rooted at root (absolute).
func newCollector(root string) *collector {
	return &collector{
		root:     root,
		folders:  make(map[string]*FolderRecord),
		failed:   make(map[string]struct{}),
		extStats: make(map[string]ExtStat),
		dupes:    newDupeIndex(),
		errs:     newErrorLog(),
	}
}

// addFile records a file. This operation is protected by a mutex since
// fastwalk calls the callback from multiple goroutines concurrently.
func (c *collector) addFile(rec FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.files = append(c.files, rec)
	c.fileCount++

	stat := c.extStats[rec.Ext]
	stat.Count++
	stat.Size += rec.Size
	c.extStats[rec.Ext] = stat
}

// addFolder records a directory. Aggregates stay zero until finalize.
func (c *collector) addFolder(rec FolderRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.folders[rec.Path]; ok {
		return
	}

	c.folders[rec.Path] = &rec
	c.folderCount++
}

// markFailed flags a directory whose contents could not be listed. Its
// record is dropped at finalize; entries already collected are unaffected.
func (c *collector) markFailed(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failed[path] = struct{}{}
}

// counts returns a snapshot for the progress reporter.
func (c *collector) counts() (files, folders int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fileCount, c.folderCount
}

// finalize computes folder aggregates bottom-up from the collected records,
// sorts every collection and produces the Result.
//
// Aggregation walks each record's ancestor chain once instead of re-walking
// every subtree, so a folder's size is the sum of the sizes of all files
// physically seen beneath it during this scan.
func (c *collector) finalize() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	// The root always gets a record, even when the walk never yielded it.
	if _, ok := c.folders[c.root]; !ok {
		c.folders[c.root] = &FolderRecord{
			Path:   c.root,
			Name:   filepath.Base(c.root),
			Parent: filepath.Dir(c.root),
		}
	}

	delete(c.failed, c.root)

	var totalBytes int64

	for i := range c.files {
		file := &c.files[i]
		totalBytes += file.Size

		c.ascend(file.Parent, func(folder *FolderRecord) {
			folder.Size += file.Size
			folder.FileCount++
		})
	}

	// Unlistable directories still physically exist, so they count toward
	// their ancestors' subfolder totals even though their records are dropped.
	for _, folder := range c.folders {
		if folder.Path == c.root {
			continue
		}

		c.ascend(folder.Parent, func(parent *FolderRecord) {
			parent.SubfolderCount++
		})
	}

	files := make([]FileRecord, len(c.files))
	copy(files, c.files)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	folders := make([]FolderRecord, 0, len(c.folders))

	for path, folder := range c.folders {
		if _, bad := c.failed[path]; bad {
			continue
		}

		folders = append(folders, *folder)
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Path < folders[j].Path })

	extStats := make(map[string]ExtStat, len(c.extStats))
	for ext, stat := range c.extStats {
		extStats[ext] = stat
	}

	return &Result{
		Root:        c.root,
		Files:       files,
		Folders:     folders,
		Duplicates:  c.dupes.finalize(),
		Errors:      c.errs.snapshot(),
		ExtStats:    extStats,
		FileCount:   int64(len(files)),
		FolderCount: int64(len(folders)),
		TotalBytes:  totalBytes,
	}
}

// ascend invokes fn on every recorded ancestor from dir up to the root.
// Callers must hold c.mu.
func (c *collector) ascend(dir string, fn func(*FolderRecord)) {
	for {
		if folder, ok := c.folders[dir]; ok {
			fn(folder)
		}

		if dir == c.root {
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}

		dir = parent
	}
}
