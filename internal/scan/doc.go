// Package scan inventories a directory tree.
//
// It walks the tree once using fastwalk for parallel traversal, records
// every file and folder, computes per-folder transitive sizes and counts,
// groups files by content digest to detect duplicates, and accumulates
// non-fatal failures in an append-only error log instead of aborting.
package scan
