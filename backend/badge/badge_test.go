package badge

import (
	"bytes"
	"image/png"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/models"
)

func TestOpacityForCount(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		maxCount int
		want     float64
	}{
		{"zero count", 0, 10, 0.1},
		{"low ratio", 2, 10, 0.3},
		{"quarter boundary", 25, 100, 0.3},
		{"half", 5, 10, 0.5},
		{"three quarters", 7, 10, 0.75},
		{"high ratio", 8, 10, 1.0},
		{"max day itself", 10, 10, 1.0},
		{"no activity at all", 5, 0, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OpacityForCount(tt.count, tt.maxCount))
		})
	}
}

func TestHeatmapOpacitiesPartialWeek(t *testing.T) {
	calendar := models.ContributionCalendar{
		TotalContributions: 12,
		Weeks: []models.ContributionWeek{
			{ContributionDays: []models.ContributionDay{
				{ContributionCount: 10, Date: "2025-08-25"},
				{ContributionCount: 2, Date: "2025-08-26"},
				{ContributionCount: 0, Date: "2025-08-27"},
			}},
		},
	}

	grid := HeatmapOpacities(calendar)

	assert.Equal(t, 1.0, grid[0][0])
	assert.Equal(t, 0.3, grid[1][0])
	assert.Equal(t, 0.1, grid[2][0])
	// Days missing from the short week render at the baseline.
	for dayIndex := 3; dayIndex < 7; dayIndex++ {
		assert.Equal(t, 0.1, grid[dayIndex][0])
	}
}

func TestHeatmapOpacitiesAllBaselineWhenEmpty(t *testing.T) {
	calendar := models.ContributionCalendar{
		Weeks: []models.ContributionWeek{
			{ContributionDays: []models.ContributionDay{
				{ContributionCount: 0, Date: "2025-08-25"},
				{ContributionCount: 0, Date: "2025-08-26"},
			}},
		},
	}

	grid := HeatmapOpacities(calendar)
	for dayIndex := 0; dayIndex < 7; dayIndex++ {
		for _, opacity := range grid[dayIndex] {
			assert.Equal(t, 0.1, opacity)
		}
	}
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	// Empty assets dir: background and avatar loads fail, the render
	// must still succeed with those elements omitted.
	r := NewRenderer(t.TempDir(), models.SiteProfile, log.New(io.Discard, "", 0))
	r.now = func() time.Time { return time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC) }
	return r
}

func TestRenderSurvivesAllAssetFailures(t *testing.T) {
	r := newTestRenderer(t)

	img, err := r.Render(models.EmptyCalendar())
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 1024, decoded.Bounds().Dx())
	assert.Equal(t, 1024, decoded.Bounds().Dy())
}

func TestRenderDeterministicForFixedInputs(t *testing.T) {
	r := newTestRenderer(t)
	calendar := models.ContributionCalendar{
		TotalContributions: 42,
		Weeks: []models.ContributionWeek{
			{ContributionDays: []models.ContributionDay{
				{ContributionCount: 3, Date: "2025-08-25"},
				{ContributionCount: 1, Date: "2025-08-26"},
			}},
		},
	}

	first, err := r.Render(calendar)
	require.NoError(t, err)
	second, err := r.Render(calendar)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestRenderLanyard(t *testing.T) {
	img, err := RenderLanyard()
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 414, decoded.Bounds().Dx())
	assert.Equal(t, 100, decoded.Bounds().Dy())
}
