// Package dashboard holds the filter state and the report state machine
// that decide which chart is active and which controls are enabled.
//
// A Dashboard is not safe for concurrent use. The TUI drives it from its
// single Update loop; delayed work comes back as a Request to Complete.
package dashboard

import (
	"fmt"

	"github.com/Veraticus/prodchart/internal/catalog"
	"github.com/Veraticus/prodchart/internal/chart"
	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/model"
	"github.com/Veraticus/prodchart/internal/service"
)

// Request is a pending report captured when a run is accepted.
type Request struct {
	Products   []model.Product
	Generation uint64
}

// Option is a functional option for configuring a Dashboard.
type Option func(*Dashboard)

// WithValueSource replaces the random report values.
func WithValueSource(values service.ValueSource) Option {
	return func(d *Dashboard) {
		if values != nil {
			d.values = values
		}
	}
}

// Dashboard is the catalog, the selection and the report phase.
type Dashboard struct {
	phase      Phase
	values     service.ValueSource
	catalog    *catalog.Catalog
	selection  Selection
	generation uint64
}

// New creates an empty dashboard in the Idle phase with no chart.
func New(opts ...Option) *Dashboard {
	d := &Dashboard{
		phase:  Idle{},
		values: RandomValues,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Load installs a fetched catalog and activates the distribution chart.
func (d *Dashboard) Load(products []model.Product) {
	d.catalog = catalog.New(products)
	d.selection = Selection{}
	d.generation++
	d.phase = d.idle()

	common.LogInfo("Product catalog loaded", common.Fields{
		"products":   d.catalog.Len(),
		"categories": len(d.catalog.Categories()),
	})
}

// LoadFailed records a catalog failure. State is left untouched, so the
// dashboard stays in its pre-load state.
func (d *Dashboard) LoadFailed(err error) {
	common.LogError(err, "Failed to load product catalog", nil)
}

// Loaded reports whether a catalog has been installed.
func (d *Dashboard) Loaded() bool {
	return d.catalog != nil
}

// Catalog returns the installed catalog, or nil before Load.
func (d *Dashboard) Catalog() *catalog.Catalog {
	return d.catalog
}

// Categories returns the category set, empty before Load.
func (d *Dashboard) Categories() []string {
	if d.catalog == nil {
		return nil
	}
	return d.catalog.Categories()
}

// FilteredProducts returns the products of the selected category.
func (d *Dashboard) FilteredProducts() []model.Product {
	category, ok := d.selection.Category()
	if !ok || d.catalog == nil {
		return nil
	}
	return d.catalog.Filter(category)
}

// SelectCategory selects category and clears the product selection, even
// when category is already selected.
func (d *Dashboard) SelectCategory(category string) error {
	if d.catalog == nil || !d.catalog.HasCategory(category) {
		return fmt.Errorf("%w: %q", common.ErrUnknownCategory, category)
	}

	d.selection = Selection{category: category, hasCategory: true}
	d.invalidate()
	return nil
}

// SelectProducts replaces the product selection. Every id must belong to
// the selected category; otherwise nothing changes.
func (d *Dashboard) SelectProducts(ids []int) error {
	category, ok := d.selection.Category()
	if !ok {
		return common.ErrNoCategory
	}

	for _, id := range ids {
		p, found := d.catalog.Lookup(id)
		if !found || p.Category != category {
			return fmt.Errorf("%w: product %d is not in %q", common.ErrProductNotInCategory, id, category)
		}
	}

	d.selection.productIDs = dedupe(ids)
	d.invalidate()
	return nil
}

// Clear resets the selection and shows a freshly counted distribution chart.
// Any pending report is abandoned.
func (d *Dashboard) Clear() {
	d.selection = Selection{}
	d.generation++
	d.phase = d.idle()
}

// Run requests a report for the current selection. When the selection is
// not runnable the dashboard falls back to the distribution view and
// false is returned.
func (d *Dashboard) Run() (Request, bool) {
	if !d.selection.Runnable() {
		d.phase = d.idle()
		return Request{}, false
	}

	products := make([]model.Product, 0, len(d.selection.productIDs))
	for _, id := range d.selection.productIDs {
		if p, ok := d.catalog.Lookup(id); ok {
			products = append(products, p)
		}
	}

	d.generation++
	req := Request{Generation: d.generation, Products: products}
	d.phase = Loading{Generation: req.Generation, Products: products}

	common.LogDebug("Report requested", common.Fields{
		"generation": req.Generation,
		"products":   len(products),
	})

	return req, true
}

// Complete finishes a report. Results for a superseded generation are
// discarded and false is returned.
func (d *Dashboard) Complete(req Request) bool {
	loading, ok := d.phase.(Loading)
	if !ok || loading.Generation != req.Generation || req.Generation != d.generation {
		common.LogDebug("Discarding stale report", common.Fields{
			"generation": req.Generation,
			"current":    d.generation,
			"phase":      d.phase.Name(),
		})
		return false
	}

	points := make([]chart.DataPoint, 0, len(loading.Products))
	for _, p := range loading.Products {
		points = append(points, chart.DataPoint{Name: p.Title, Y: d.values.Value(p)})
	}

	d.phase = Ready{Report: chart.Report(points)}
	return true
}

// Phase returns the current report phase.
func (d *Dashboard) Phase() Phase {
	return d.phase
}

// Selection returns a copy of the current selection.
func (d *Dashboard) Selection() Selection {
	return Selection{
		category:    d.selection.category,
		hasCategory: d.selection.hasCategory,
		productIDs:  d.selection.ProductIDs(),
	}
}

// Generation returns the current request generation.
func (d *Dashboard) Generation() uint64 {
	return d.generation
}

// View returns the flags derived from the phase.
func (d *Dashboard) View() ViewState {
	return d.phase.view()
}

// ActiveChart returns the chart of the current phase, or nil while loading
// or before the catalog has loaded.
func (d *Dashboard) ActiveChart() *chart.Config {
	switch p := d.phase.(type) {
	case Idle:
		return p.Distribution
	case Ready:
		report := p.Report
		return &report
	default:
		return nil
	}
}

// RunEnabled reports whether the run control should accept input.
func (d *Dashboard) RunEnabled() bool {
	return d.selection.Runnable() && !d.View().Loading
}

// idle builds the Idle phase with a distribution chart recounted from the
// full product list.
func (d *Dashboard) idle() Idle {
	if d.catalog == nil {
		return Idle{}
	}
	dist := chart.Distribution(d.catalog.Products(), d.catalog.Categories())
	return Idle{Distribution: &dist}
}

// invalidate supersedes any pending report after a selection change.
func (d *Dashboard) invalidate() {
	d.generation++
	if _, ok := d.phase.(Loading); ok {
		d.phase = d.idle()
	}
}
