// Package viewmodel holds render-only projections of dashboard state.
package viewmodel

import "github.com/Veraticus/prodchart/internal/chart"

// ChartView is everything the chart panel needs to decide what to draw.
type ChartView struct {
	Chart            *chart.Config
	ShowDistribution bool
	Loading          bool
	HasCategory      bool
}

// Visible reports whether the active chart should be drawn.
func (cv ChartView) Visible() bool {
	if cv.Loading || cv.Chart == nil {
		return false
	}
	if cv.ShowDistribution {
		return true
	}
	return cv.HasCategory
}

// ShowSpinner reports whether the loading indicator should be drawn.
func (cv ChartView) ShowSpinner() bool {
	return cv.Loading
}

// IsReport reports whether the visible chart is a report.
func (cv ChartView) IsReport() bool {
	return cv.Visible() && cv.Chart.Kind == chart.KindReport
}
