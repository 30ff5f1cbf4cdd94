package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Options configures a scan and CLI behavior.
type Options struct {
	// Path is the root directory to inventory.
	Path string
	// Excludes contains regex patterns to exclude.
	Excludes []string
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// TopN is the number of top entries to display in reports.
	TopN int
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Dupes indicates whether to list duplicate groups in the report.
	Dupes bool
	// Errors indicates whether to list scan errors in the report.
	Errors bool
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// calculateDepth returns the depth of a path relative to the root.
func calculateDepth(path, root string) int {
	relPath := strings.TrimPrefix(path, root)

	relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
	if relPath == "" {
		return 0
	}

	return strings.Count(relPath, string(filepath.Separator)) + 1
}

// extensionOf returns the lowercased extension of path, or NoExtension.
// Dotfiles like .gitignore have no extension, only a leading dot.
func extensionOf(path string) string {
	base := filepath.Base(path)

	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return NoExtension
	}

	return strings.ToLower(ext)
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// startProgressReporter invokes hook(files, folders) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				files, folders := c.counts()
				hook(files, folders)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run inventories the directory tree at opt.Path and returns the result.
//
// Every reachable file and directory is visited exactly once; symbolic
// links are never followed, so symlinked cycles cannot recurse. A single
// inaccessible entry or subtree degrades into an entry in Result.Errors
// rather than aborting the scan, and a failure of the walk itself still
// yields whatever partial results were accumulated.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Result, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs,
	// then anchor all record paths at the absolute root.
	root, err := filepath.Abs(filepath.Clean(opt.Path))
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	// validate path exists and is accessible
	if statInfo, err := os.Stat(Longpath(root)); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	log.printf("[debug]: scanning root: %s\n", root)
	log.printf("[debug]: exclude regexes:\n")

	for _, re := range excludeRegexes {
		log.printf("[debug]:   - %s\n", re.String())
	}

	collector := newCollector(root)

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	// Walk directory with fastwalk (parallel traversal)
	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)
			collector.markFailed(path)
			collector.errs.append("access", path, err)

			return nil
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		// Check regex exclusion patterns
		if matchedPattern := shouldExcludeByPattern(path, excludeRegexes); matchedPattern != nil {
			log.printf("[debug]: excluding: %s (matched %s)\n", path, matchedPattern.String())

			if d.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		depth := calculateDepth(path, root)

		if d.IsDir() {
			collector.addFolder(FolderRecord{
				Path:   path,
				Name:   filepath.Base(path),
				Parent: filepath.Dir(path),
				Depth:  depth,
			})

			return nil
		}

		// Symlinks, devices and other irregular entries are not inventoried.
		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			collector.errs.append("stat", path, err)

			return nil //nolint:nilerr // Entry is skipped, scan continues
		}

		if info.Size() < opt.MinSize {
			return nil
		}

		rec := FileRecord{
			Path:       path,
			Name:       filepath.Base(path),
			Parent:     filepath.Dir(path),
			Ext:        extensionOf(path),
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			CreateTime: creationTime(info),
			Depth:      depth,
		}

		if info.Size() < hashSizeLimit {
			digest, err := hashFile(Longpath(path), info.Size())
			if err != nil {
				// Unhashable files stay in the collection but never dedup.
				collector.errs.append("hash", path, err)
			} else {
				rec.Digest = digest
				collector.dupes.insert(digest, DupeMember{Path: path, Name: rec.Name, Size: rec.Size})
			}
		}

		collector.addFile(rec)

		return nil
	})

	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) {
			return nil, walkErr
		}

		// Partial results still go out; the failure is evidence in the log.
		collector.errs.append("walk", root, walkErr)
	}

	result := collector.finalize()

	result.Elapsed = time.Since(start)

	return result, nil
}
