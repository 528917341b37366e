package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kerbaras/comics/pkg/app/styles"
	"github.com/kerbaras/comics/pkg/services"
)

// ProgressTracker follows an export: overall progress plus every comic
// that is still being fetched or has failed.
type ProgressTracker struct {
	active  map[int]services.ExportProgress
	failed  map[int]services.ExportProgress
	overall services.ExportProgress
	width   int
}

func NewProgressTracker(width int) *ProgressTracker {
	return &ProgressTracker{
		active: make(map[int]services.ExportProgress),
		failed: make(map[int]services.ExportProgress),
		width:  width,
	}
}

func (p *ProgressTracker) Update(progress services.ExportProgress) {
	if progress.Total > 0 {
		p.overall.Total = progress.Total
	}
	if progress.Done > p.overall.Done {
		p.overall.Done = progress.Done
	}

	switch progress.Status {
	case "fetching":
		p.active[progress.Index] = progress
	case "fetched":
		delete(p.active, progress.Index)
	case "error":
		delete(p.active, progress.Index)
		p.failed[progress.Index] = progress
	default:
		p.overall.Status = progress.Status
	}
}

// SetWidth resizes the progress bar, keeping what was tracked so far.
func (p *ProgressTracker) SetWidth(width int) {
	p.width = width
}

func (p *ProgressTracker) HasActive() bool {
	return len(p.active) > 0
}

func (p *ProgressTracker) Failed() int {
	return len(p.failed)
}

func (p *ProgressTracker) View() string {
	if p.overall.Total == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Export"))
	b.WriteString("\n\n")

	percentage := float64(p.overall.Done) / float64(p.overall.Total) * 100
	b.WriteString(renderProgressBar(p.overall.Done, p.overall.Total, p.width-4))
	b.WriteString("\n")

	status := p.overall.Status
	if status == "" {
		status = "fetching"
	}
	b.WriteString(styles.StatusStyle(status).Render(
		fmt.Sprintf("%s (%d/%d comics - %.0f%%)", status, p.overall.Done, p.overall.Total, percentage)))
	b.WriteString("\n")

	for _, index := range sortedKeys(p.active) {
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("  #%d", index)))
		b.WriteString("\n")
	}
	for _, index := range sortedKeys(p.failed) {
		errMsg := styles.StatusError.Render(fmt.Sprintf("  #%d: %s", index, p.failed[index].Error))
		b.WriteString(errMsg)
		b.WriteString("\n")
	}

	return b.String()
}

func sortedKeys(m map[int]services.ExportProgress) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return styles.ProgressBarStyle.Render(bar)
}
