// Package chart builds chart configurations and renders them as terminal text.
package chart

import (
	"github.com/Veraticus/prodchart/internal/model"
)

// Kind identifies which chart a Config describes.
type Kind string

const (
	// KindDistribution is the products-per-category chart.
	KindDistribution Kind = "distribution"
	// KindReport is the per-product value chart.
	KindReport Kind = "report"
)

// Chart titles and series names.
const (
	DistributionTitle  = "Product Distribution by Category"
	DistributionSeries = "Products"
	ReportTitle        = "Product Distribution"
	ReportSeries       = "Value"
	ReportYAxisTitle   = "Value"
)

// DataPoint is one value in a series.
type DataPoint struct {
	Name string  `json:"name"`
	Y    float64 `json:"y"`
}

// Config describes one chart. It is replaced wholesale, never mutated.
type Config struct {
	Kind       Kind        `json:"kind"`
	Title      string      `json:"title"`
	SeriesName string      `json:"series"`
	YAxisTitle string      `json:"yAxisTitle,omitempty"`
	XAxis      []string    `json:"categories,omitempty"`
	Data       []DataPoint `json:"data"`
}

// Total sums the series values.
func (c Config) Total() float64 {
	var total float64
	for _, p := range c.Data {
		total += p.Y
	}
	return total
}

// Distribution counts products per category, in the given category order.
// Counts are always recomputed from products.
func Distribution(products []model.Product, categories []string) Config {
	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.Category]++
	}

	data := make([]DataPoint, 0, len(categories))
	for _, cat := range categories {
		data = append(data, DataPoint{Name: cat, Y: float64(counts[cat])})
	}

	return Config{
		Kind:       KindDistribution,
		Title:      DistributionTitle,
		SeriesName: DistributionSeries,
		Data:       data,
	}
}

// Report charts one point per product, keeping the order given.
func Report(points []DataPoint) Config {
	data := make([]DataPoint, len(points))
	copy(data, points)

	axis := make([]string, 0, len(points))
	for _, p := range points {
		axis = append(axis, p.Name)
	}

	return Config{
		Kind:       KindReport,
		Title:      ReportTitle,
		SeriesName: ReportSeries,
		YAxisTitle: ReportYAxisTitle,
		XAxis:      axis,
		Data:       data,
	}
}
