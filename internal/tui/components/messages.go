package components

// CategorySelectedMsg is sent when the user picks a category.
type CategorySelectedMsg struct {
	Category string
}

// ProductsSelectedMsg carries the full product selection after a change,
// in selection order.
type ProductsSelectedMsg struct {
	IDs []int
}
