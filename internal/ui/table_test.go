package ui

import (
	"strings"
	"testing"
)

func TestFormatTable(t *testing.T) {
	got := formatTable(
		[]string{"TITLE", "AGE"},
		[][]string{
			{"buy milk", "2m ago"},
			{"water the plants", "1h ago"},
		},
	)

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "TITLE") {
		t.Errorf("header = %q, want TITLE first", lines[0])
	}

	// Columns must align: AGE cells start at the same offset.
	first := strings.Index(lines[1], "2m ago")
	second := strings.Index(lines[2], "1h ago")
	if first != second {
		t.Errorf("AGE column misaligned: %d vs %d", first, second)
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("short", 10); got != "short" {
		t.Errorf("truncateCell kept = %q, want unchanged", got)
	}
	got := truncateCell("a very long todo title", 10)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncateCell = %q, want ellipsis suffix", got)
	}
}
