package main

import (
	"context"
	"io"

	"github.com/Veraticus/prodchart/internal/catalog"
	"github.com/Veraticus/prodchart/internal/cli"
	"github.com/Veraticus/prodchart/internal/model"
	"github.com/charmbracelet/x/term"
)

func (a *app) source() *catalog.HTTPSource {
	return catalog.NewHTTPSource(a.settings.CatalogURL, a.settings.FetchTimeout)
}

// fetchProducts loads the catalog with a spinner on w.
func (a *app) fetchProducts(ctx context.Context, w io.Writer) ([]model.Product, error) {
	var products []model.Product
	err := cli.NewSpinner(w, "Fetching catalog...").Wait(func() error {
		var err error
		products, err = a.source().FetchProducts(ctx)
		return err
	})
	return products, err
}

// terminalWidth returns the width of w when it is a terminal, else fallback.
func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || !term.IsTerminal(f.Fd()) {
		return fallback
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
