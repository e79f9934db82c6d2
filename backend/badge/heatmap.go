package badge

import (
	"fmt"

	"github.com/fogleman/gg"

	"portfolio/backend/models"
)

const (
	cellSize   = 10.0
	cellGap    = 2.0
	cellRadius = 2.0
)

// OpacityForCount maps a day's contribution count to one of four opacity
// buckets relative to the busiest day in the calendar. A step function reads
// better than a gradient at 10px cell sizes.
func OpacityForCount(count, maxCount int) float64 {
	if count == 0 || maxCount == 0 {
		return 0.1
	}

	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio <= 0.25:
		return 0.3
	case ratio <= 0.5:
		return 0.5
	case ratio <= 0.75:
		return 0.75
	default:
		return 1.0
	}
}

// HeatmapOpacities returns the 7×N opacity grid for the calendar, row 0
// being the first day slot of each week. Days missing from a short week get
// the baseline 0.1.
func HeatmapOpacities(calendar models.ContributionCalendar) [7][]float64 {
	maxCount := calendar.MaxDailyCount()

	var grid [7][]float64
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		row := make([]float64, len(calendar.Weeks))
		for weekIndex, week := range calendar.Weeks {
			if dayIndex < len(week.ContributionDays) {
				row[weekIndex] = OpacityForCount(week.ContributionDays[dayIndex].ContributionCount, maxCount)
			} else {
				row[weekIndex] = 0.1
			}
		}
		grid[dayIndex] = row
	}
	return grid
}

// drawHeatmap renders the contribution label and grid right-aligned at
// (right, top), clipped to the panel so older weeks run off the left edge
// the way the original badge masks them.
func (r *Renderer) drawHeatmap(dc *gg.Context, calendar models.ContributionCalendar, left, right, top float64) {
	dc.SetFontFace(r.labelFace)
	dc.SetRGBA(textR, textG, textB, 0.7)
	dc.DrawStringAnchored(fmt.Sprintf("%d contributions", calendar.TotalContributions), right, top, 1, 0.5)

	grid := HeatmapOpacities(calendar)
	columns := len(calendar.Weeks)
	gridWidth := float64(columns)*(cellSize+cellGap) - cellGap
	startX := right - gridWidth
	startY := top + 20

	dc.Push()
	dc.DrawRectangle(left, startY, right-left, 7*(cellSize+cellGap))
	dc.Clip()
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		y := startY + float64(dayIndex)*(cellSize+cellGap)
		for weekIndex := 0; weekIndex < columns; weekIndex++ {
			x := startX + float64(weekIndex)*(cellSize+cellGap)
			dc.SetRGBA(textR, textG, textB, grid[dayIndex][weekIndex])
			dc.DrawRoundedRectangle(x, y, cellSize, cellSize, cellRadius)
			dc.Fill()
		}
	}
	dc.ResetClip()
	dc.Pop()
}
