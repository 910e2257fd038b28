package dashboard

import (
	"github.com/Veraticus/prodchart/internal/chart"
	"github.com/Veraticus/prodchart/internal/model"
)

// Phase is the report controller state. Exactly one of Idle, Loading or
// Ready is current; each carries only the data valid in that state.
type Phase interface {
	// Name returns a short label for logs and the status bar.
	Name() string
	view() ViewState
}

// Idle shows the distribution chart. Distribution is nil until the catalog
// has loaded.
type Idle struct {
	Distribution *chart.Config
}

// Loading waits for the delayed report for Generation.
type Loading struct {
	Products   []model.Product
	Generation uint64
}

// Ready shows a completed report.
type Ready struct {
	Report chart.Config
}

// Name implements Phase.
func (Idle) Name() string { return "idle" }

// Name implements Phase.
func (Loading) Name() string { return "loading" }

// Name implements Phase.
func (Ready) Name() string { return "ready" }

func (Idle) view() ViewState    { return ViewState{ShowDistribution: true} }
func (Loading) view() ViewState { return ViewState{Loading: true} }
func (Ready) view() ViewState   { return ViewState{} }

// ViewState holds the UI flags derived from the current phase.
type ViewState struct {
	Loading          bool
	ShowDistribution bool
}
