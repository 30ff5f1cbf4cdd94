package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/diskscan/internal/scan"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the full scan result in JSON format.
func PrintJSON(result *scan.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// pct returns part as a percentage of total, or zero for an empty total.
func pct(part, total int64) float64 {
	if total <= 0 {
		return 0.0
	}

	return 100.0 * float64(part) / float64(total)
}

// PrintTable outputs the scan result in human-readable table format.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(result *scan.Result, options scan.Options, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	topN := options.TopN

	// Extension statistics
	fmt.Fprintln(w, "\nTop extensions:\t\t")

	extList := make([]string, 0, len(result.ExtStats))
	for ext := range result.ExtStats {
		extList = append(extList, ext)
	}

	sort.Slice(extList, func(i, j int) bool {
		return result.ExtStats[extList[i]].Size < result.ExtStats[extList[j]].Size
	})

	startIdx := 0
	if len(extList) > topN {
		startIdx = len(extList) - topN
	}

	displayList := extList[startIdx:]
	for i, ext := range displayList {
		extStat := result.ExtStats[ext]
		fmt.Fprintf(w, "  %d) %s:\t%d files, %s (%.1f%%)\n",
			len(displayList)-i, ext, extStat.Count,
			humanize.IBytes(uint64(extStat.Size)), pct(extStat.Size, result.TotalBytes))
	}

	// Largest files, displayed smallest first so the top entry prints last
	fmt.Fprintln(w, "\nTop files:\t\t")

	files := make([]scan.FileRecord, len(result.Files))
	copy(files, result.Files)
	sort.Slice(files, func(i, j int) bool { return files[i].Size > files[j].Size })

	if len(files) > topN {
		files = files[:topN]
	}

	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		fmt.Fprintf(w, "  %d) '%s'\t%s (%.1f%%)\n",
			i+1, f.Path, humanize.IBytes(uint64(f.Size)), pct(f.Size, result.TotalBytes))
	}

	// Largest folders, excluding the root itself (always 100%)
	fmt.Fprintln(w, "\nTop folders:\t\t")

	folders := make([]scan.FolderRecord, 0, len(result.Folders))

	for _, folder := range result.Folders {
		if folder.Path == result.Root {
			continue
		}

		folders = append(folders, folder)
	}

	sort.Slice(folders, func(i, j int) bool { return folders[i].Size > folders[j].Size })

	if len(folders) > topN {
		folders = folders[:topN]
	}

	for i := len(folders) - 1; i >= 0; i-- {
		folder := folders[i]
		fmt.Fprintf(w, "  %d) '%s'\t%s, %d files, %d subfolders (%.1f%%)\n",
			i+1, folder.Path, humanize.IBytes(uint64(folder.Size)),
			folder.FileCount, folder.SubfolderCount, pct(folder.Size, result.TotalBytes))
	}

	var wasted int64
	for _, group := range result.Duplicates {
		wasted += group.WastedBytes
	}

	if options.Dupes {
		fmt.Fprintln(w, "\nDuplicate groups:\t\t")

		for i, group := range result.Duplicates {
			fmt.Fprintf(w, "  %d) %s\t%d files, %s wasted\n",
				i+1, group.Digest, len(group.Members), humanize.IBytes(uint64(group.WastedBytes)))

			for _, member := range group.Members {
				fmt.Fprintf(w, "     - '%s'\t%s\n", member.Path, humanize.IBytes(uint64(member.Size)))
			}
		}
	}

	if options.Errors {
		fmt.Fprintln(w, "\nErrors:\t\t")

		for i, scanErr := range result.Errors {
			fmt.Fprintf(w, "  %d) [%s] '%s'\t%s\n", i+1, scanErr.Op, scanErr.Path, scanErr.Message)
		}
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", result.FileCount)
	fmt.Fprintf(w, "Total folders:\t%d\n", result.FolderCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalBytes)), result.TotalBytes)
	fmt.Fprintf(w, "Duplicate groups:\t%d (%s wasted)\n",
		len(result.Duplicates), humanize.IBytes(uint64(wasted)))
	fmt.Fprintf(w, "Errors:\t%d\n", len(result.Errors))

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
