package scan

import "testing"

func TestDupeIndexFinalizeFiltersAndOrders(t *testing.T) {
	index := newDupeIndex()

	index.insert("aa", DupeMember{Path: "/z/b.txt", Name: "b.txt", Size: 10})
	index.insert("aa", DupeMember{Path: "/a/a.txt", Name: "a.txt", Size: 10})
	index.insert("bb", DupeMember{Path: "/only.txt", Name: "only.txt", Size: 99})
	index.insert("cc", DupeMember{Path: "/c/3.bin", Name: "3.bin", Size: 30})
	index.insert("cc", DupeMember{Path: "/c/1.bin", Name: "1.bin", Size: 30})
	index.insert("cc", DupeMember{Path: "/c/2.bin", Name: "2.bin", Size: 30})

	groups := index.finalize()

	if len(groups) != 2 {
		t.Fatalf("expected 2 actionable groups, got %d", len(groups))
	}

	for _, group := range groups {
		if len(group.Members) < 2 {
			t.Errorf("group %s finalized with %d members", group.Digest, len(group.Members))
		}
	}

	// Largest first member first.
	if groups[0].Digest != "cc" || groups[1].Digest != "aa" {
		t.Errorf("unexpected group order: %s, %s", groups[0].Digest, groups[1].Digest)
	}

	// Members sorted by path.
	if groups[0].Members[0].Path != "/c/1.bin" {
		t.Errorf("members not sorted by path: %s first", groups[0].Members[0].Path)
	}

	if groups[0].WastedBytes != 60 {
		t.Errorf("expected 60 wasted bytes for triple group, got %d", groups[0].WastedBytes)
	}

	if groups[1].WastedBytes != 10 {
		t.Errorf("expected 10 wasted bytes for pair, got %d", groups[1].WastedBytes)
	}
}

func TestDupeIndexFinalizeTieBreaksByDigest(t *testing.T) {
	index := newDupeIndex()

	index.insert("zz", DupeMember{Path: "/z1", Size: 5})
	index.insert("zz", DupeMember{Path: "/z2", Size: 5})
	index.insert("aa", DupeMember{Path: "/a1", Size: 5})
	index.insert("aa", DupeMember{Path: "/a2", Size: 5})

	groups := index.finalize()

	if len(groups) != 2 || groups[0].Digest != "aa" || groups[1].Digest != "zz" {
		t.Fatalf("equal-size groups not ordered by digest: %+v", groups)
	}
}

func TestDupeIndexEmpty(t *testing.T) {
	if groups := newDupeIndex().finalize(); len(groups) != 0 {
		t.Errorf("expected no groups, got %d", len(groups))
	}
}
