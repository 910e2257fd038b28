package chart

import (
	"encoding/json"
	"testing"

	"github.com/Veraticus/prodchart/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistribution(t *testing.T) {
	products := []model.Product{
		{ID: 1, Title: "A", Category: "cat1"},
		{ID: 2, Title: "B", Category: "cat1"},
		{ID: 3, Title: "C", Category: "cat2"},
	}

	cfg := Distribution(products, []string{"cat1", "cat2"})

	assert.Equal(t, KindDistribution, cfg.Kind)
	assert.Equal(t, DistributionTitle, cfg.Title)
	assert.Equal(t, DistributionSeries, cfg.SeriesName)
	assert.Equal(t, []DataPoint{
		{Name: "cat1", Y: 2},
		{Name: "cat2", Y: 1},
	}, cfg.Data)
	assert.InDelta(t, 3.0, cfg.Total(), 0.0001)
	assert.Empty(t, cfg.XAxis)
}

func TestDistribution_EmptyCatalog(t *testing.T) {
	cfg := Distribution(nil, nil)

	assert.Equal(t, KindDistribution, cfg.Kind)
	assert.Empty(t, cfg.Data)
	assert.Zero(t, cfg.Total())
}

func TestReport(t *testing.T) {
	points := []DataPoint{
		{Name: "B", Y: 12.5},
		{Name: "A", Y: 80},
	}

	cfg := Report(points)

	assert.Equal(t, KindReport, cfg.Kind)
	assert.Equal(t, ReportTitle, cfg.Title)
	assert.Equal(t, ReportYAxisTitle, cfg.YAxisTitle)
	assert.Equal(t, []string{"B", "A"}, cfg.XAxis, "axis keeps selection order")
	assert.Equal(t, points, cfg.Data)

	points[0].Y = 99
	assert.InDelta(t, 12.5, cfg.Data[0].Y, 0.0001, "config must not alias caller data")
}

func TestConfig_JSONShape(t *testing.T) {
	cfg := Report([]DataPoint{{Name: "A", Y: 1}})

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"kind": "report",
		"title": "Product Distribution",
		"series": "Value",
		"yAxisTitle": "Value",
		"categories": ["A"],
		"data": [{"name": "A", "y": 1}]
	}`, string(raw))
}
