package chart

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestRenderer_Distribution(t *testing.T) {
	cfg := Config{
		Kind:       KindDistribution,
		Title:      DistributionTitle,
		SeriesName: DistributionSeries,
		Data: []DataPoint{
			{Name: "cat1", Y: 2},
			{Name: "cat2", Y: 1},
		},
	}

	out := plain(NewRenderer(DefaultStyles(), 40).Render(cfg))

	assert.Contains(t, out, DistributionTitle)
	assert.Contains(t, out, "cat1")
	assert.Contains(t, out, "66.7%")
	assert.Contains(t, out, "33.3%")
	assert.Contains(t, out, "Products: 3")

	firstLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, blockRune) {
			firstLine = strings.TrimRight(line, " ")
			break
		}
	}
	assert.Equal(t, 38, strings.Count(firstLine, blockRune), "stacked bar spans the full bar width")
}

func TestRenderer_DistributionEmpty(t *testing.T) {
	out := plain(NewRenderer(DefaultStyles(), 40).Render(Distribution(nil, nil)))
	assert.Contains(t, out, "No products")
}

func TestRenderer_Report(t *testing.T) {
	cfg := Report([]DataPoint{
		{Name: "Essence Mascara", Y: 50},
		{Name: "Eyeshadow Palette", Y: 100},
	})

	out := plain(NewRenderer(DefaultStyles(), 60).Render(cfg))

	assert.Contains(t, out, ReportTitle)
	assert.Contains(t, out, "Essence Mascara")
	assert.Contains(t, out, "Eyeshadow Palette")
	assert.Contains(t, out, "50.0")
	assert.Contains(t, out, "100.0")

	mascara := strings.Index(out, "Essence Mascara")
	palette := strings.Index(out, "Eyeshadow Palette")
	assert.Less(t, mascara, palette, "bars follow axis order")
}

func TestRenderer_ReportNonPositiveAndNonFinite(t *testing.T) {
	tests := []struct {
		name   string
		points []DataPoint
		shown  []string
	}{
		{
			name:   "negative value",
			points: []DataPoint{{Name: "A", Y: 10}, {Name: "B", Y: -5}},
			shown:  []string{"10.0", "-5.0"},
		},
		{
			name:   "all negative",
			points: []DataPoint{{Name: "A", Y: -1}, {Name: "B", Y: -2}},
			shown:  []string{"-1.0", "-2.0"},
		},
		{
			name:   "nan",
			points: []DataPoint{{Name: "A", Y: math.NaN()}, {Name: "B", Y: 3}},
			shown:  []string{"NaN", "3.0"},
		},
		{
			name:   "infinite",
			points: []DataPoint{{Name: "A", Y: math.Inf(1)}, {Name: "B", Y: math.Inf(-1)}},
			shown:  []string{"+Inf", "-Inf"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(DefaultStyles(), 60)
			cfg := Report(tt.points)

			var out string
			assert.NotPanics(t, func() { out = plain(r.Render(cfg)) })
			for _, s := range tt.shown {
				assert.Contains(t, out, s)
			}
			assert.NotPanics(t, func() { r.RenderPlot(cfg, 6) })
		})
	}
}

func TestBarLength(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		peak  float64
		width int
		want  int
	}{
		{name: "peak fills width", v: 10, peak: 10, width: 20, want: 20},
		{name: "half", v: 5, peak: 10, width: 20, want: 10},
		{name: "negative", v: -5, peak: 10, width: 20, want: 0},
		{name: "nan", v: math.NaN(), peak: 10, width: 20, want: 0},
		{name: "inf", v: math.Inf(1), peak: 10, width: 20, want: 0},
		{name: "zero peak", v: 3, peak: 0, width: 20, want: 0},
		{name: "above peak is clamped", v: 30, peak: 10, width: 20, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, barLength(tt.v, tt.peak, tt.width))
		})
	}
}

func TestPeakMagnitude(t *testing.T) {
	peak := peakMagnitude([]DataPoint{{Y: 4}, {Y: -9}, {Y: math.NaN()}, {Y: math.Inf(1)}})
	assert.InDelta(t, 9.0, peak, 0.0001)
}

func TestRenderer_ReportEmpty(t *testing.T) {
	out := plain(NewRenderer(DefaultStyles(), 60).Render(Report(nil)))
	assert.Contains(t, out, "No products selected")
}

func TestRenderer_UnknownKind(t *testing.T) {
	out := plain(NewRenderer(DefaultStyles(), 60).Render(Config{Kind: "pie3d"}))
	assert.Contains(t, out, `unsupported chart kind "pie3d"`)
}

func TestRenderer_PlotNeedsTwoPoints(t *testing.T) {
	r := NewRenderer(DefaultStyles(), 40)

	assert.Empty(t, r.RenderPlot(Report([]DataPoint{{Name: "A", Y: 1}}), 8))
	assert.NotEmpty(t, r.RenderPlot(Report([]DataPoint{{Name: "A", Y: 1}, {Name: "B", Y: 3}}), 8))
}

func TestRenderer_PlotSkipsFlatSeries(t *testing.T) {
	r := NewRenderer(DefaultStyles(), 40)

	assert.Empty(t, r.RenderPlot(Report([]DataPoint{{Name: "A", Y: 5}, {Name: "B", Y: 5}}), 8))
	assert.Empty(t, r.RenderPlot(Report([]DataPoint{{Name: "A", Y: math.NaN()}, {Name: "B", Y: 0}}), 8))
	assert.NotEmpty(t, r.RenderPlot(Report([]DataPoint{{Name: "A", Y: -2}, {Name: "B", Y: 4}}), 8))
}

func TestProportionalWidths(t *testing.T) {
	tests := []struct {
		name  string
		data  []DataPoint
		width int
		want  []int
	}{
		{
			name:  "exact split",
			data:  []DataPoint{{Y: 1}, {Y: 1}},
			width: 10,
			want:  []int{5, 5},
		},
		{
			name:  "remainder goes to largest fraction",
			data:  []DataPoint{{Y: 2}, {Y: 1}},
			width: 10,
			want:  []int{7, 3},
		},
		{
			name:  "zero entries get nothing",
			data:  []DataPoint{{Y: 0}, {Y: 3}},
			width: 7,
			want:  []int{0, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := proportionalWidths(tt.data, tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Annibale…", truncate("Annibale Colombo Bed", 9))
	assert.Equal(t, "…", truncate("abc", 1))
}
