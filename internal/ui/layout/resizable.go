package layout

import (
	"context"
	"fmt"

	"github.com/bnema/panes/internal/domain/entity"
	"github.com/bnema/panes/internal/logging"
)

// ResizableOptions configures a Resizable.
type ResizableOptions struct {
	// Bounds per axis. A zero value, explicit or not, selects the package
	// defaults (see NewResizable).
	Horizontal entity.ResizeConfig
	Vertical   entity.ResizeConfig

	// Container returns the bounding box ratios are measured against. It is
	// called on every pointer event, so the container may change size mid-drag.
	Container func() entity.Rect

	// Target receives the move/up/cancel listeners while a drag is active.
	Target EventTarget

	// Style is the shared drag affordance. Optional.
	Style *DragStyle
}

type subscription struct {
	id int
	fn func(entity.RatioChange)
}

// Resizable tracks the split ratio of up to two dividers (one per axis) and
// moves them in response to pointer drags.
//
// A Resizable is driven by a single UI event loop and is not safe for
// concurrent use.
type Resizable struct {
	ctx       context.Context
	bounds    [2]entity.ResizeConfig
	ratios    [2]float64
	container func() entity.Rect

	session   dragSession
	listeners listenerSet
	style     *DragStyle
	release   func()

	subs    []subscription
	nextSub int
	closed  bool
}

// NewResizable creates a Resizable with both ratios at their initial share.
// An axis whose bounds are the zero ResizeConfig, including an explicit
// ResizeConfig{Initial: 0, Min: 0, Max: 0}, gets the package defaults for
// that axis; a divider pinned at 0% cannot be requested. It panics if either
// axis has invalid bounds.
func NewResizable(ctx context.Context, opts ResizableOptions) *Resizable {
	h := opts.Horizontal
	if h.IsZero() {
		h = entity.DefaultHorizontalResize()
	}
	v := opts.Vertical
	if v.IsZero() {
		v = entity.DefaultVerticalResize()
	}
	if err := h.Validate(); err != nil {
		panic(fmt.Sprintf("layout: horizontal: %v", err))
	}
	if err := v.Validate(); err != nil {
		panic(fmt.Sprintf("layout: vertical: %v", err))
	}

	r := &Resizable{
		ctx:       logging.WithComponent(ctx, "resizable"),
		container: opts.Container,
		listeners: listenerSet{target: opts.Target},
		style:     opts.Style,
	}
	r.bounds[entity.AxisHorizontal] = h
	r.bounds[entity.AxisVertical] = v
	r.ratios[entity.AxisHorizontal] = h.Initial
	r.ratios[entity.AxisVertical] = v.Initial
	return r
}

// Ratio returns the current share of the primary panel along axis.
func (r *Resizable) Ratio(axis entity.Axis) float64 {
	if !axis.Valid() {
		return 0
	}
	return r.ratios[axis]
}

// Bounds returns the configured bounds for axis.
func (r *Resizable) Bounds(axis entity.Axis) entity.ResizeConfig {
	if !axis.Valid() {
		return entity.ResizeConfig{}
	}
	return r.bounds[axis]
}

// State returns the drag session state.
func (r *Resizable) State() entity.DragState {
	return r.session.state
}

// IsDragging reports whether the divider for axis is held.
func (r *Resizable) IsDragging(axis entity.Axis) bool {
	active, ok := r.session.axis()
	return ok && active == axis
}

// StartDrag begins a drag on axis. It returns false without changing anything
// if a drag is already in progress or the resizer is closed.
func (r *Resizable) StartDrag(axis entity.Axis) bool {
	log := logging.FromContext(r.ctx)

	if r.closed || !axis.Valid() {
		return false
	}
	if !r.session.start(axis, r.ratios[axis]) {
		log.Debug().
			Str("axis", axis.String()).
			Str("state", r.session.state.String()).
			Msg("drag start ignored, session already active")
		return false
	}

	r.listeners.attach(r.onPointerMove, r.onPointerUp, r.onCancel)
	if r.style != nil {
		r.release = r.style.Acquire(axis)
	}

	log.Debug().Str("axis", axis.String()).Float64("ratio", r.ratios[axis]).Msg("drag started")
	return true
}

// PointerDown starts a drag on axis and moves the divider to p.
func (r *Resizable) PointerDown(axis entity.Axis, p entity.Point) bool {
	if !r.StartDrag(axis) {
		return false
	}
	r.PointerMove(p)
	return true
}

// PointerMove moves the active divider to p. It does nothing while idle and
// keeps the previous ratio when the container geometry is unusable.
func (r *Resizable) PointerMove(p entity.Point) {
	axis, ok := r.session.axis()
	if !ok || r.container == nil {
		return
	}

	raw, ok := RatioAt(r.container(), p, axis)
	if !ok {
		logging.FromContext(r.ctx).Trace().
			Str("axis", axis.String()).
			Msg("skipping pointer move, container has no extent")
		return
	}

	b := r.bounds[axis]
	r.set(axis, Clamp(raw, b.Min, b.Max))
}

// PointerUp ends the active drag, keeping the current ratio.
func (r *Resizable) PointerUp() {
	r.endDrag("pointer_up")
}

// Cancel ends the active drag and puts the divider back where the drag
// started. It returns false when no drag was active.
func (r *Resizable) Cancel() bool {
	axis, ok := r.session.axis()
	if !ok {
		return false
	}
	start := r.session.startRatio
	r.endDrag("cancel")
	r.set(axis, start)
	return true
}

// Nudge moves the divider for axis by delta percent, clamped to its bounds.
// It is ignored while a drag is in progress. It returns true if the ratio
// changed.
func (r *Resizable) Nudge(axis entity.Axis, delta float64) bool {
	if r.closed || !axis.Valid() || r.session.state.IsDragging() {
		return false
	}
	b := r.bounds[axis]
	return r.set(axis, Clamp(r.ratios[axis]+delta, b.Min, b.Max))
}

// Reset puts the divider for axis back at its initial share. It is ignored
// while a drag is in progress.
func (r *Resizable) Reset(axis entity.Axis) bool {
	if r.closed || !axis.Valid() || r.session.state.IsDragging() {
		return false
	}
	return r.set(axis, r.bounds[axis].Initial)
}

// Subscribe registers fn to be called after every ratio change. The returned
// func removes the subscription.
func (r *Resizable) Subscribe(fn func(entity.RatioChange)) (unsubscribe func()) {
	if r.closed || fn == nil {
		return func() {}
	}
	r.nextSub++
	id := r.nextSub
	r.subs = append(r.subs, subscription{id: id, fn: fn})

	return func() {
		for i, s := range r.subs {
			if s.id == id {
				r.subs = append(r.subs[:i], r.subs[i+1:]...)
				return
			}
		}
	}
}

// Close ends any active drag, removes its listeners and restores the drag
// style. Call it when the owning view goes away. Close is idempotent.
func (r *Resizable) Close() {
	if r.closed {
		return
	}
	r.endDrag("close")
	r.subs = nil
	r.closed = true
}

func (r *Resizable) endDrag(reason string) {
	axis, wasDragging := r.session.end()

	// Unconditional: both are idempotent.
	r.listeners.detach()
	if r.release != nil {
		r.release()
		r.release = nil
	}

	if wasDragging {
		logging.FromContext(r.ctx).Debug().
			Str("axis", axis.String()).
			Str("reason", reason).
			Float64("ratio", r.ratios[axis]).
			Msg("drag ended")
	}
}

func (r *Resizable) set(axis entity.Axis, ratio float64) bool {
	old := r.ratios[axis]
	if old == ratio {
		return false
	}
	r.ratios[axis] = ratio

	change := entity.RatioChange{Axis: axis, Old: old, New: ratio}
	subs := make([]subscription, len(r.subs))
	copy(subs, r.subs)
	for _, s := range subs {
		s.fn(change)
	}
	return true
}

func (r *Resizable) onPointerMove(ev PointerEvent) {
	r.PointerMove(ev.Point)
}

func (r *Resizable) onPointerUp(PointerEvent) {
	r.PointerUp()
}

func (r *Resizable) onCancel(PointerEvent) {
	r.Cancel()
}
