package dashboard

import (
	"testing"

	"github.com/Veraticus/prodchart/internal/chart"
	"github.com/Veraticus/prodchart/internal/common"
	"github.com/Veraticus/prodchart/internal/model"
	"github.com/Veraticus/prodchart/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioProducts() []model.Product {
	return []model.Product{
		{ID: 1, Title: "A", Category: "cat1"},
		{ID: 2, Title: "B", Category: "cat1"},
		{ID: 3, Title: "C", Category: "cat2"},
	}
}

func fixedValues(v float64) service.ValueSource {
	return service.ValueFunc(func(model.Product) float64 { return v })
}

func loaded(t *testing.T, opts ...Option) *Dashboard {
	t.Helper()
	d := New(opts...)
	d.Load(scenarioProducts())
	return d
}

func TestNew_InitialState(t *testing.T) {
	d := New()

	assert.IsType(t, Idle{}, d.Phase())
	assert.Equal(t, ViewState{ShowDistribution: true}, d.View())
	assert.Nil(t, d.ActiveChart(), "no chart before the catalog loads")
	assert.Empty(t, d.Categories())
	assert.False(t, d.RunEnabled())
	assert.False(t, d.Loaded())
}

func TestLoad_ScenarioDistribution(t *testing.T) {
	d := loaded(t)

	assert.True(t, d.Loaded())
	assert.Equal(t, []string{"cat1", "cat2"}, d.Categories())

	active := d.ActiveChart()
	require.NotNil(t, active)
	assert.Equal(t, chart.KindDistribution, active.Kind)
	assert.Equal(t, []chart.DataPoint{
		{Name: "cat1", Y: 2},
		{Name: "cat2", Y: 1},
	}, active.Data)
	assert.Equal(t, ViewState{ShowDistribution: true}, d.View())
}

func TestLoadFailed_LeavesPreLoadState(t *testing.T) {
	d := New()
	d.LoadFailed(common.FetchError(assert.AnError))

	assert.Empty(t, d.Categories())
	assert.Nil(t, d.ActiveChart())
	assert.False(t, d.RunEnabled())

	_, hasCategory := d.Selection().Category()
	assert.False(t, hasCategory)
	assert.ErrorIs(t, d.SelectCategory("cat1"), common.ErrUnknownCategory)
}

func TestSelectCategory_ClearsProducts(t *testing.T) {
	d := loaded(t)

	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1, 2}))
	require.Equal(t, []int{1, 2}, d.Selection().ProductIDs())

	// Re-selecting the same category still clears.
	require.NoError(t, d.SelectCategory("cat1"))
	assert.Empty(t, d.Selection().ProductIDs())

	require.NoError(t, d.SelectProducts([]int{2}))
	require.NoError(t, d.SelectCategory("cat2"))
	category, ok := d.Selection().Category()
	assert.True(t, ok)
	assert.Equal(t, "cat2", category)
	assert.Empty(t, d.Selection().ProductIDs())
}

func TestSelectCategory_Unknown(t *testing.T) {
	d := loaded(t)
	require.NoError(t, d.SelectCategory("cat1"))

	err := d.SelectCategory("cat9")
	assert.ErrorIs(t, err, common.ErrUnknownCategory)

	category, _ := d.Selection().Category()
	assert.Equal(t, "cat1", category, "rejected selection leaves state unchanged")
}

func TestFilteredProducts(t *testing.T) {
	d := loaded(t)
	assert.Empty(t, d.FilteredProducts())

	for _, category := range d.Categories() {
		require.NoError(t, d.SelectCategory(category))
		for _, p := range d.FilteredProducts() {
			assert.Equal(t, category, p.Category)
		}
	}
}

func TestSelectProducts_Validation(t *testing.T) {
	tests := []struct {
		name    string
		ids     []int
		wantErr error
		want    []int
	}{
		{name: "valid ids keep order", ids: []int{2, 1}, want: []int{2, 1}},
		{name: "duplicates dropped", ids: []int{1, 2, 1}, want: []int{1, 2}},
		{name: "empty selection", ids: nil, want: []int{}},
		{name: "id from other category", ids: []int{1, 3}, wantErr: common.ErrProductNotInCategory},
		{name: "unknown id", ids: []int{42}, wantErr: common.ErrProductNotInCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := loaded(t)
			require.NoError(t, d.SelectCategory("cat1"))
			require.NoError(t, d.SelectProducts([]int{1}))

			err := d.SelectProducts(tt.ids)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, []int{1}, d.Selection().ProductIDs(), "selection unchanged on rejection")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Selection().ProductIDs())
		})
	}
}

func TestSelectProducts_RequiresCategory(t *testing.T) {
	d := loaded(t)
	assert.ErrorIs(t, d.SelectProducts([]int{1}), common.ErrNoCategory)
}

func TestRun_GuardFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, d *Dashboard)
	}{
		{
			name:  "no category",
			setup: func(*testing.T, *Dashboard) {},
		},
		{
			name: "category without products",
			setup: func(t *testing.T, d *Dashboard) {
				require.NoError(t, d.SelectCategory("cat1"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := loaded(t)
			tt.setup(t, d)
			before := d.Selection()
			generation := d.Generation()

			req, ok := d.Run()

			assert.False(t, ok)
			assert.Zero(t, req.Generation)
			assert.IsType(t, Idle{}, d.Phase())
			assert.Equal(t, ViewState{ShowDistribution: true}, d.View())
			assert.Equal(t, before, d.Selection())
			assert.Equal(t, generation, d.Generation())
		})
	}
}

func TestRun_GuardFailureAfterReportFallsBackToDistribution(t *testing.T) {
	d := loaded(t, WithValueSource(fixedValues(10)))
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1}))
	req, ok := d.Run()
	require.True(t, ok)
	require.True(t, d.Complete(req))
	require.IsType(t, Ready{}, d.Phase())

	require.NoError(t, d.SelectCategory("cat2"))
	_, ok = d.Run()

	assert.False(t, ok)
	assert.True(t, d.View().ShowDistribution)
	require.NotNil(t, d.ActiveChart())
	assert.Equal(t, chart.KindDistribution, d.ActiveChart().Kind)
}

func TestRun_ScenarioReport(t *testing.T) {
	d := loaded(t, WithValueSource(fixedValues(42)))
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1, 2}))
	assert.True(t, d.RunEnabled())

	req, ok := d.Run()
	require.True(t, ok)
	assert.Equal(t, ViewState{Loading: true}, d.View())
	assert.False(t, d.RunEnabled(), "run disabled while loading")
	assert.Nil(t, d.ActiveChart())
	assert.Equal(t, []int{1, 2}, model.ProductIDs(req.Products))

	require.True(t, d.Complete(req))

	assert.Equal(t, ViewState{}, d.View())
	active := d.ActiveChart()
	require.NotNil(t, active)
	assert.Equal(t, chart.KindReport, active.Kind)
	assert.Equal(t, []string{"A", "B"}, active.XAxis)
	assert.Len(t, active.Data, 2)
	assert.InDelta(t, 42.0, active.Data[0].Y, 0.0001)
}

func TestRun_SelectionOrderIsCharted(t *testing.T) {
	d := loaded(t, WithValueSource(fixedValues(1)))
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{2, 1}))

	req, ok := d.Run()
	require.True(t, ok)
	require.True(t, d.Complete(req))

	assert.Equal(t, []string{"B", "A"}, d.ActiveChart().XAxis)
}

func TestRun_DefaultValuesInRange(t *testing.T) {
	d := loaded(t)
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1, 2}))

	req, ok := d.Run()
	require.True(t, ok)
	require.True(t, d.Complete(req))

	for _, p := range d.ActiveChart().Data {
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 100.0)
	}
}

func TestComplete_StaleAfterClear(t *testing.T) {
	d := loaded(t)
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1}))
	req, ok := d.Run()
	require.True(t, ok)

	d.Clear()

	assert.False(t, d.Complete(req), "completion from before clear is discarded")
	assert.IsType(t, Idle{}, d.Phase())
	assert.Equal(t, chart.KindDistribution, d.ActiveChart().Kind)
}

func TestComplete_StaleAfterCategoryChange(t *testing.T) {
	d := loaded(t)
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1}))
	req, ok := d.Run()
	require.True(t, ok)

	require.NoError(t, d.SelectCategory("cat2"))

	assert.Equal(t, ViewState{ShowDistribution: true}, d.View(), "selection change abandons loading")
	assert.False(t, d.Complete(req))
	assert.IsType(t, Idle{}, d.Phase())
}

func TestComplete_SupersededRun(t *testing.T) {
	d := loaded(t, WithValueSource(fixedValues(5)))
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1}))
	first, ok := d.Run()
	require.True(t, ok)
	second, ok := d.Run()
	require.True(t, ok)

	assert.False(t, d.Complete(first))
	assert.True(t, d.Complete(second))
	assert.False(t, d.Complete(second), "a request completes at most once")
}

func TestClear(t *testing.T) {
	d := loaded(t, WithValueSource(fixedValues(3)))
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1, 2}))
	req, ok := d.Run()
	require.True(t, ok)
	require.True(t, d.Complete(req))

	d.Clear()

	_, hasCategory := d.Selection().Category()
	assert.False(t, hasCategory)
	assert.Empty(t, d.Selection().ProductIDs())
	assert.Equal(t, ViewState{ShowDistribution: true}, d.View())

	active := d.ActiveChart()
	require.NotNil(t, active)
	want := chart.Distribution(d.Catalog().Products(), d.Categories())
	assert.Equal(t, want, *active)
}

func TestClear_BeforeLoad(t *testing.T) {
	d := New()
	d.Clear()

	assert.Nil(t, d.ActiveChart())
	assert.Equal(t, ViewState{ShowDistribution: true}, d.View())
}

func TestSelection_ReturnsCopy(t *testing.T) {
	d := loaded(t)
	require.NoError(t, d.SelectCategory("cat1"))
	require.NoError(t, d.SelectProducts([]int{1, 2}))

	ids := d.Selection().ProductIDs()
	ids[0] = 99

	assert.Equal(t, []int{1, 2}, d.Selection().ProductIDs())
	assert.True(t, d.Selection().Contains(2))
	assert.False(t, d.Selection().Contains(3))
}
