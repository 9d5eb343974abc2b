package tui

// Flippable is a two-sided panel: the list side and the add/edit side.
type Flippable struct {
	flipped bool
}

func (f *Flippable) Toggle() {
	f.flipped = !f.flipped
}

// Flipped reports whether the add/edit side is showing.
func (f Flippable) Flipped() bool {
	return f.flipped
}
