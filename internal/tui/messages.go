package tui

import (
	"github.com/Veraticus/prodchart/internal/dashboard"
	"github.com/Veraticus/prodchart/internal/model"
)

type catalogLoadedMsg struct {
	err      error
	products []model.Product
}

// reportReadyMsg fires once the report delay for req has elapsed.
type reportReadyMsg struct {
	req dashboard.Request
}
