package manifest

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name    string
		want    int
		matches bool
	}{
		{"01-system-architecture.md", 1, true},
		{"1-system-architecture.md", 1, true},
		{"2_request-flow.md", 2, true},
		{"007_golden-eye.md", 7, true},
		{"10-deployment.md", 10, true},
		{"0-intro.md", 0, true},
		{"01-.md", 1, true}, // separator directly followed by the suffix still matches
		{"readme-notes.md", 0, false},
		{"a-1.md", 0, false},
		{"5.md", 0, false},
		{"05-notes.txt", 0, false},
		{"05-notes.md.bak", 0, false},
		{"99999999999999999999-overflow.md", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumber(tt.name)
		if ok != tt.matches {
			t.Errorf("ParseNumber(%q): matched=%v, want %v", tt.name, ok, tt.matches)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseNumber(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"01-a.md", true},
		{"notes.md", true},
		{"README.md", false},
		{"MastraCombined.md", false},
		{"readme.md", true}, // exclusions are case-sensitive exact matches
		{"mastracombined.md", true},
		{"diagram.png", false},
		{"notes.markdown", false},
	}

	for _, tt := range tests {
		if got := IsCandidate(tt.name); got != tt.want {
			t.Errorf("IsCandidate(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIndex_LastWriteWins(t *testing.T) {
	ix := NewIndex()
	if !ix.Add("03-x.md") {
		t.Fatal("expected 03-x.md to be indexed")
	}
	if !ix.Add("3-x.md") {
		t.Fatal("expected 3-x.md to be indexed")
	}

	if ix.Len() != 1 {
		t.Fatalf("expected a single key after collision, got %d", ix.Len())
	}

	ordered := ix.Ordered()
	if ordered[0].Name != "3-x.md" {
		t.Errorf("expected last-indexed name to win, got %s", ordered[0].Name)
	}

	collisions := ix.Collisions()
	if len(collisions) != 1 {
		t.Fatalf("expected one recorded collision, got %d", len(collisions))
	}
	c := collisions[0]
	if c.Number != 3 || c.Shadowed != "03-x.md" || c.Winner != "3-x.md" {
		t.Errorf("unexpected collision record: %+v", c)
	}
}

func TestIndex_OrderedAscending(t *testing.T) {
	ix := NewIndex()
	for _, name := range []string{"10-j.md", "2-b.md", "1-a.md", "007_g.md"} {
		ix.Add(name)
	}

	want := []Entry{
		{1, "1-a.md"},
		{2, "2-b.md"},
		{7, "007_g.md"},
		{10, "10-j.md"},
	}
	got := ix.Ordered()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestIndex_IgnoresNonMatching(t *testing.T) {
	ix := NewIndex()
	if ix.Add("readme-notes.md") {
		t.Error("expected non-numbered name to be rejected")
	}
	if ix.Len() != 0 {
		t.Errorf("expected empty index, got %d entries", ix.Len())
	}
}

func TestFileBlock(t *testing.T) {
	want := "\n\n# File: 01-a.md\n\nAlpha\n\n\n"
	if got := FileBlock("01-a.md", "Alpha\n"); got != want {
		t.Errorf("FileBlock mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSize(t *testing.T) {
	s := Size{Bytes: 1536}
	if s.KB() != 1.5 {
		t.Errorf("KB() = %v, want 1.5", s.KB())
	}
	if got, want := s.String(), "1536 bytes (1.50 KB, 0.00 MB)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	s = Size{Bytes: 1048576}
	if got, want := s.String(), "1048576 bytes (1024.00 KB, 1.00 MB)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
