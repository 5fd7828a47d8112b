package model

import (
	"testing"
	"time"
)

func TestInvocation_Duration(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	inv := &Invocation{StartedAt: start}
	if d := inv.Duration(); d != 0 {
		t.Errorf("Expected zero duration for unfinished invocation, got %v", d)
	}

	inv.FinishedAt = start.Add(1500 * time.Millisecond)
	if d := inv.Duration(); d != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s, got %v", d)
	}
}

func TestClearReport_Summary(t *testing.T) {
	tests := []struct {
		name     string
		report   *ClearReport
		expected string
	}{
		{"nil", nil, ""},
		{"none", &ClearReport{Dir: "/c", Marker: "question-"}, `No cache files matching "question-" in /c`},
		{"one", &ClearReport{Dir: "/c", Removed: []string{"question-1.tmp"}}, "Removed 1 cache file from /c"},
		{"many", &ClearReport{Dir: "/c", Removed: []string{"a", "b"}}, "Removed 2 cache files from /c"},
	}

	for _, test := range tests {
		if got := test.report.Summary(); got != test.expected {
			t.Errorf("%s: Summary() = %q, expected %q", test.name, got, test.expected)
		}
	}
}
