package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/idelchi/diskscan/internal/scan"
)

func sampleResult() *scan.Result {
	return &scan.Result{
		Root: "/data",
		Files: []scan.FileRecord{
			{Path: "/data/a.txt", Name: "a.txt", Parent: "/data", Ext: ".txt", Size: 10, Depth: 1, Digest: "deadbeef00000000"},
			{Path: "/data/sub/b.txt", Name: "b.txt", Parent: "/data/sub", Ext: ".txt", Size: 10, Depth: 2, Digest: "deadbeef00000000"},
		},
		Folders: []scan.FolderRecord{
			{Path: "/data", Name: "data", Parent: "/", Size: 20, FileCount: 2, SubfolderCount: 1},
			{Path: "/data/sub", Name: "sub", Parent: "/data", Size: 10, FileCount: 1, Depth: 1},
		},
		Duplicates: []scan.DuplicateGroup{
			{
				Digest: "deadbeef00000000",
				Members: []scan.DupeMember{
					{Path: "/data/a.txt", Name: "a.txt", Size: 10},
					{Path: "/data/sub/b.txt", Name: "b.txt", Size: 10},
				},
				WastedBytes: 10,
			},
		},
		Errors: []scan.ScanError{
			{Path: "/data/locked", Op: "access", Message: "permission denied"},
		},
		ExtStats:    map[string]scan.ExtStat{".txt": {Count: 2, Size: 20}},
		FileCount:   2,
		FolderCount: 2,
		TotalBytes:  20,
		Elapsed:     time.Millisecond,
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	options := scan.Options{TopN: 5, Dupes: true, Errors: true}

	if err := PrintTable(sampleResult(), options, &buf); err != nil {
		t.Fatalf("PrintTable: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"Top extensions:",
		".txt",
		"Top files:",
		"Top folders:",
		"/data/sub",
		"Duplicate groups:",
		"deadbeef00000000",
		"Errors:",
		"/data/locked",
		"Total files:",
		"Total folders:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	// The root folder itself is not a "top folder".
	if strings.Contains(out, "'/data'\t") {
		t.Errorf("root folder listed among top folders:\n%s", out)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	if err := PrintJSON(sampleResult(), &buf); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{"files", "folders", "duplicates", "errors", "ext_stats"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON output missing %q", key)
		}
	}
}
