package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestProgressAdapter_Lines(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	adapter := NewProgressAdapter(&buf)

	adapter.AnchorRead("README.md")
	adapter.FileAdded("01-a.md")
	adapter.FileSkipped("02-b.md", errors.New("permission denied"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}

	if lines[0] != "✓ Successfully read README.md" {
		t.Errorf("unexpected anchor line: %q", lines[0])
	}
	if lines[1] != "✓ Added 01-a.md" {
		t.Errorf("unexpected progress line: %q", lines[1])
	}
	if lines[2] != "Error reading 02-b.md: permission denied" {
		t.Errorf("unexpected skip line: %q", lines[2])
	}
}
