package layout

//go:generate mockgen -source=style.go -destination=mocks/mock_style_surface.go -package=mocks

import (
	"sync"

	"github.com/bnema/panes/internal/domain/entity"
)

// Pointer shapes applied while a divider is held.
const (
	PointerColResize = "col-resize"
	PointerRowResize = "row-resize"
)

// PointerShapeFor returns the resize pointer shape for axis.
func PointerShapeFor(axis entity.Axis) string {
	if axis == entity.AxisVertical {
		return PointerRowResize
	}
	return PointerColResize
}

// StyleSurface is the document-wide presentation state a drag overrides:
// the pointer shape and whether text selection is allowed.
type StyleSurface interface {
	PointerShape() string
	SetPointerShape(shape string)
	SelectionEnabled() bool
	SetSelectionEnabled(enabled bool)
}

type styleHold struct {
	shape string
}

type styleSnapshot struct {
	shape     string
	selection bool
}

// DragStyle is a reference-counted owner of the global drag affordance.
// The first Acquire snapshots the surface, later ones layer on top, and the
// surface is restored from the snapshot when the last hold is released. This
// lets nested split views drag without clobbering each other's restore value.
type DragStyle struct {
	mu      sync.Mutex
	surface StyleSurface
	holds   []*styleHold
	saved   styleSnapshot
}

// NewDragStyle creates a DragStyle over surface. A nil surface makes every
// operation a no-op.
func NewDragStyle(surface StyleSurface) *DragStyle {
	return &DragStyle{surface: surface}
}

// Acquire applies the resize pointer for axis and disables selection.
// The returned release func is safe to call more than once.
func (d *DragStyle) Acquire(axis entity.Axis) (release func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.surface == nil {
		return func() {}
	}

	if len(d.holds) == 0 {
		d.saved = styleSnapshot{
			shape:     d.surface.PointerShape(),
			selection: d.surface.SelectionEnabled(),
		}
	}

	h := &styleHold{shape: PointerShapeFor(axis)}
	d.holds = append(d.holds, h)
	d.apply(h.shape)

	return func() { d.release(h) }
}

// Holds returns the number of outstanding holds.
func (d *DragStyle) Holds() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.holds)
}

func (d *DragStyle) release(h *styleHold) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := -1
	for i, held := range d.holds {
		if held == h {
			idx = i
			break
		}
	}
	if idx < 0 {
		return // Already released
	}

	wasTop := idx == len(d.holds)-1
	d.holds = append(d.holds[:idx], d.holds[idx+1:]...)

	switch {
	case len(d.holds) == 0:
		d.surface.SetPointerShape(d.saved.shape)
		d.surface.SetSelectionEnabled(d.saved.selection)
	case wasTop:
		d.apply(d.holds[len(d.holds)-1].shape)
	}
}

func (d *DragStyle) apply(shape string) {
	d.surface.SetPointerShape(shape)
	d.surface.SetSelectionEnabled(false)
}
