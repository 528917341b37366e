package components

import (
	"errors"
	"strings"
	"testing"

	"github.com/kerbaras/comics/pkg/services"
)

func TestNewProgressTracker(t *testing.T) {
	tracker := NewProgressTracker(80)

	if tracker == nil {
		t.Fatal("Expected tracker to be created")
	}
	if tracker.width != 80 {
		t.Errorf("Expected width 80, got %d", tracker.width)
	}
	if tracker.HasActive() {
		t.Error("Expected no active fetches")
	}
	if tracker.View() != "" {
		t.Error("Expected empty view before any progress")
	}
}

func TestUpdate(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.ExportProgress{Index: 3, Total: 10, Status: "fetching"})
	if !tracker.HasActive() {
		t.Error("Expected tracker to have active fetches")
	}

	tracker.Update(services.ExportProgress{Index: 3, Done: 1, Total: 10, Status: "fetched"})
	if tracker.HasActive() {
		t.Error("Expected fetched comic to be removed")
	}
	if tracker.overall.Done != 1 {
		t.Errorf("Expected 1 done, got %d", tracker.overall.Done)
	}
}

func TestUpdateFailed(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.ExportProgress{Index: 4, Total: 5, Status: "fetching"})
	tracker.Update(services.ExportProgress{Index: 4, Done: 1, Total: 5, Status: "error", Error: errors.New("404")})

	if tracker.Failed() != 1 {
		t.Errorf("Expected 1 failed comic, got %d", tracker.Failed())
	}
	if !strings.Contains(tracker.View(), "#4: 404") {
		t.Errorf("Expected failure in view, got %q", tracker.View())
	}
}

func TestDoneNeverDecreases(t *testing.T) {
	tracker := NewProgressTracker(80)

	tracker.Update(services.ExportProgress{Index: 2, Done: 2, Total: 4, Status: "fetched"})
	tracker.Update(services.ExportProgress{Index: 1, Total: 4, Status: "fetching"})

	if tracker.overall.Done != 2 {
		t.Errorf("Expected done to stay 2, got %d", tracker.overall.Done)
	}
}

func TestViewStatus(t *testing.T) {
	tracker := NewProgressTracker(40)
	tracker.Update(services.ExportProgress{Done: 4, Total: 4, Status: "complete"})

	view := tracker.View()
	if !strings.Contains(view, "complete (4/4 comics - 100%)") {
		t.Errorf("Unexpected view: %q", view)
	}
}

func TestSetWidth(t *testing.T) {
	tracker := NewProgressTracker(80)
	tracker.Update(services.ExportProgress{Index: 1, Total: 4, Status: "fetching"})
	tracker.Update(services.ExportProgress{Index: 2, Done: 1, Total: 4, Status: "error", Error: errors.New("404")})
	tracker.SetWidth(24)

	view := tracker.View()
	if !tracker.HasActive() || tracker.Failed() != 1 {
		t.Error("Expected tracked progress to survive a resize")
	}
	if !strings.Contains(view, "#2: 404") || !strings.Contains(view, "1/4") {
		t.Errorf("Unexpected view: %q", view)
	}
	if !strings.Contains(view, strings.Repeat("░", 15)) || strings.Contains(view, strings.Repeat("░", 16)) {
		t.Errorf("Expected a bar of width 20: %q", view)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		current, total, width int
		filled                int
	}{
		{0, 10, 10, 0},
		{5, 10, 10, 5},
		{10, 10, 10, 10},
		{12, 10, 10, 10},
	}

	for _, tt := range tests {
		bar := renderProgressBar(tt.current, tt.total, tt.width)
		if got := strings.Count(bar, "█"); got != tt.filled {
			t.Errorf("renderProgressBar(%d, %d, %d) filled = %d, want %d", tt.current, tt.total, tt.width, got, tt.filled)
		}
		if got := strings.Count(bar, "█") + strings.Count(bar, "░"); got != tt.width {
			t.Errorf("renderProgressBar(%d, %d, %d) width = %d", tt.current, tt.total, tt.width, got)
		}
	}

	if renderProgressBar(1, 0, 10) != "" {
		t.Error("Expected empty bar for zero total")
	}
}
