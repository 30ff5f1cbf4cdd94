package scan

import "time"

// NoExtension is the sentinel extension recorded for files without one.
const NoExtension = "no_extension"

// FileRecord describes a single regular file discovered during a scan.
type FileRecord struct {
	// Path is the absolute path to the file.
	Path string `json:"path"`
	// Name is the base name of the file.
	Name string `json:"name"`
	// Parent is the absolute path of the containing directory.
	Parent string `json:"parent_folder"`
	// Ext is the lowercased extension, or NoExtension.
	Ext string `json:"extension"`
	// Size is the file size in bytes.
	Size int64 `json:"size_bytes"`
	// ModTime is the last modification time.
	ModTime time.Time `json:"modified_time"`
	// CreateTime is the creation (or inode change) time where the
	// platform exposes one, falling back to the modification time.
	CreateTime time.Time `json:"created_time"`
	// Depth is the number of path segments below the scan root.
	Depth int `json:"depth"`
	// Digest is the content digest, empty when the file was not hashed.
	Digest string `json:"digest,omitempty"`
}

// FolderRecord describes a directory with aggregates over its whole subtree.
type FolderRecord struct {
	// Path is the absolute path to the directory.
	Path string `json:"path"`
	// Name is the base name of the directory.
	Name string `json:"name"`
	// Parent is the absolute path of the containing directory.
	Parent string `json:"parent_folder"`
	// Size is the transitive sum of all contained file sizes in bytes.
	Size int64 `json:"size_bytes"`
	// FileCount is the number of files anywhere beneath the directory.
	FileCount int64 `json:"file_count"`
	// SubfolderCount is the number of directories anywhere beneath it.
	SubfolderCount int64 `json:"subfolder_count"`
	// Depth is the number of path segments below the scan root.
	Depth int `json:"depth"`
}

// ExtStat represents statistics for a file extension.
type ExtStat struct {
	// Count is the number of files with this extension.
	Count int `json:"count"`
	// Size is the cumulative size in bytes.
	Size int64 `json:"size"`
}

// Result holds everything a single scan produced.
//
// Files and Folders are sorted by path and Duplicates per the index
// contract, so repeat scans of a static tree compare bit-identical.
type Result struct {
	// Root is the absolute scan root.
	Root string `json:"root"`
	// Files contains one record per discovered regular file.
	Files []FileRecord `json:"files"`
	// Folders contains one record per discovered directory.
	Folders []FolderRecord `json:"folders"`
	// Duplicates contains the actionable duplicate groups.
	Duplicates []DuplicateGroup `json:"duplicates"`
	// Errors is the accumulated non-fatal failure log, in insertion order.
	Errors []ScanError `json:"errors"`
	// ExtStats maps file extensions to their statistics.
	ExtStats map[string]ExtStat `json:"ext_stats"`
	// FileCount is the total number of file records.
	FileCount int64 `json:"file_count"`
	// FolderCount is the total number of folder records.
	FolderCount int64 `json:"folder_count"`
	// TotalBytes is the cumulative size of all recorded files.
	TotalBytes int64 `json:"total_bytes"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}
