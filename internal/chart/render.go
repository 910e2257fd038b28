package chart

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	plot "github.com/chriskim06/drawille-go"
)

const (
	minBarWidth = 10
	valueWidth  = 8
	blockRune   = "█"
)

// Styles controls how charts are drawn.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Palette []lipgloss.Color
}

// DefaultStyles returns the styles used outside the TUI.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true),
		Label: lipgloss.NewStyle(),
		Value: lipgloss.NewStyle().Bold(true),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#737373")),
		Palette: []lipgloss.Color{
			"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
			"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
		},
	}
}

// Renderer turns a Config into terminal text of a fixed width.
type Renderer struct {
	styles Styles
	width  int
}

// NewRenderer creates a renderer for the given width.
func NewRenderer(styles Styles, width int) Renderer {
	if len(styles.Palette) == 0 {
		styles.Palette = DefaultStyles().Palette
	}
	return Renderer{styles: styles, width: width}
}

// Render draws the chart matching the config kind.
func (r Renderer) Render(cfg Config) string {
	title := r.styles.Title.Render(cfg.Title)

	var body string
	switch cfg.Kind {
	case KindDistribution:
		body = r.renderDistribution(cfg)
	case KindReport:
		body = r.renderReport(cfg)
	default:
		body = r.styles.Muted.Render(fmt.Sprintf("unsupported chart kind %q", cfg.Kind))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body)
}

// renderDistribution draws a proportional stacked bar and a legend.
func (r Renderer) renderDistribution(cfg Config) string {
	total := cfg.Total()
	if len(cfg.Data) == 0 || total <= 0 {
		return r.styles.Muted.Render("No products")
	}

	barWidth := max(r.width-2, minBarWidth)
	widths := proportionalWidths(cfg.Data, barWidth)

	var bar strings.Builder
	for i, w := range widths {
		if w == 0 {
			continue
		}
		bar.WriteString(r.color(i).Render(strings.Repeat(blockRune, w)))
	}

	labelWidth := r.labelWidth(cfg.Data)
	lines := make([]string, 0, len(cfg.Data))
	for i, p := range cfg.Data {
		pct := p.Y / total * 100
		lines = append(lines, fmt.Sprintf("%s %s %s %s",
			r.color(i).Render(blockRune),
			r.styles.Label.Width(labelWidth).Render(truncate(p.Name, labelWidth)),
			r.styles.Value.Render(fmt.Sprintf("%4.0f", p.Y)),
			r.styles.Muted.Render(fmt.Sprintf("%5.1f%%", pct)),
		))
	}

	legend := lipgloss.JoinVertical(lipgloss.Left, lines...)
	caption := r.styles.Muted.Render(fmt.Sprintf("%s: %.0f", cfg.SeriesName, total))

	return lipgloss.JoinVertical(lipgloss.Left, bar.String(), "", legend, "", caption)
}

// renderReport draws one horizontal bar per x-axis entry.
func (r Renderer) renderReport(cfg Config) string {
	if len(cfg.Data) == 0 {
		return r.styles.Muted.Render("No products selected")
	}

	labelWidth := r.labelWidth(cfg.Data)
	barWidth := max(r.width-labelWidth-valueWidth-2, minBarWidth)
	peak := peakMagnitude(cfg.Data)

	lines := make([]string, 0, len(cfg.Data)+1)
	lines = append(lines, r.styles.Muted.Render(
		strings.Repeat(" ", labelWidth+1)+cfg.YAxisTitle,
	))

	for i, p := range cfg.Data {
		n := barLength(p.Y, peak, barWidth)
		lines = append(lines, fmt.Sprintf("%s %s%s %s",
			r.styles.Label.Width(labelWidth).Render(truncate(p.Name, labelWidth)),
			r.color(i).Render(strings.Repeat(blockRune, n)),
			strings.Repeat(" ", barWidth-n),
			r.styles.Value.Render(fmt.Sprintf("%6.1f", p.Y)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderPlot draws the series as a braille line plot. It returns an empty
// string when there are fewer than two points to connect or the series is
// flat, since the canvas scales by the value range.
func (r Renderer) RenderPlot(cfg Config, height int) string {
	if len(cfg.Data) < 2 || height < 2 {
		return ""
	}

	values := make([]float64, len(cfg.Data))
	for i, p := range cfg.Data {
		values[i] = finite(p.Y)
	}
	if slices.Min(values) == slices.Max(values) {
		return ""
	}

	canvas := plot.NewCanvas(max(r.width, minBarWidth), height)
	canvas.NumDataPoints = len(values)
	canvas.ShowAxis = true
	canvas.LineColors = []plot.Color{plot.Red}
	canvas.Fill([][]float64{values})

	return canvas.String()
}

// peakMagnitude is the largest finite absolute value in data.
func peakMagnitude(data []DataPoint) float64 {
	var peak float64
	for _, p := range data {
		peak = max(peak, math.Abs(finite(p.Y)))
	}
	return peak
}

// barLength scales v against peak. Negative and non-finite values draw an
// empty bar; the printed number still carries the sign.
func barLength(v, peak float64, width int) int {
	v = finite(v)
	if peak <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / peak * float64(width)))
	return min(max(n, 0), width)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func (r Renderer) color(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(r.styles.Palette[i%len(r.styles.Palette)])
}

func (r Renderer) labelWidth(data []DataPoint) int {
	longest := 0
	for _, p := range data {
		longest = max(longest, lipgloss.Width(p.Name))
	}
	limit := max(r.width/3, 8)
	return max(min(longest, limit), 1)
}

// proportionalWidths splits width across the series using largest
// remainders so the segments always sum to width.
func proportionalWidths(data []DataPoint, width int) []int {
	var total float64
	for _, p := range data {
		total += p.Y
	}

	widths := make([]int, len(data))
	remainders := make([]float64, len(data))
	used := 0
	for i, p := range data {
		exact := p.Y / total * float64(width)
		widths[i] = int(exact)
		remainders[i] = exact - float64(widths[i])
		used += widths[i]
	}

	for used < width {
		best := -1
		for i := range data {
			if data[i].Y <= 0 {
				continue
			}
			if best == -1 || remainders[i] > remainders[best] {
				best = i
			}
		}
		if best == -1 {
			break
		}
		widths[best]++
		remainders[best] = -1
		used++
	}

	return widths
}

// truncate shortens s to width display cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
