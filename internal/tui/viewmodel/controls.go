package viewmodel

// KeyBinding represents a keyboard shortcut.
type KeyBinding struct {
	Key         string
	Description string
	IsActive    bool
}

// ControlsView represents the sidebar controls.
type ControlsView struct {
	Category      string
	KeyBindings   []KeyBinding
	SelectedCount int
	ProductCount  int
	RunEnabled    bool
	HasCategory   bool
}

// GetActiveKeyBindings returns only the currently active key bindings.
func (cv ControlsView) GetActiveKeyBindings() []KeyBinding {
	var active []KeyBinding
	for _, kb := range cv.KeyBindings {
		if kb.IsActive {
			active = append(active, kb)
		}
	}
	return active
}

// ShowProducts reports whether the product picker should be drawn.
func (cv ControlsView) ShowProducts() bool {
	return cv.HasCategory
}
