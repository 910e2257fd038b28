package dashboard

import (
	"math/rand"

	"github.com/Veraticus/prodchart/internal/model"
	"github.com/Veraticus/prodchart/internal/service"
)

// RandomValues is the default report value source: uniform in [0,100).
// The catalog carries no metric to chart, so values are placeholders.
var RandomValues service.ValueSource = service.ValueFunc(func(model.Product) float64 {
	return rand.Float64() * 100
})
