package layout_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/panes/internal/domain/entity"
	"github.com/bnema/panes/internal/ui/layout"
	"github.com/bnema/panes/internal/ui/layout/mocks"
)

func TestDragStyle_SnapshotAndRestore(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockStyleSurface(ctrl)
	gomock.InOrder(
		surface.EXPECT().PointerShape().Return("pointer"),
		surface.EXPECT().SelectionEnabled().Return(true),
		surface.EXPECT().SetPointerShape(layout.PointerColResize),
		surface.EXPECT().SetSelectionEnabled(false),
		surface.EXPECT().SetPointerShape("pointer"),
		surface.EXPECT().SetSelectionEnabled(true),
	)
	style := layout.NewDragStyle(surface)

	// Act
	release := style.Acquire(entity.AxisHorizontal)
	assert.Equal(t, 1, style.Holds())
	release()
	release()

	// Assert
	assert.Equal(t, 0, style.Holds())
}

func TestDragStyle_NestedHolds(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockStyleSurface(ctrl)
	gomock.InOrder(
		surface.EXPECT().PointerShape().Return(""),
		surface.EXPECT().SelectionEnabled().Return(true),
		// outer: horizontal
		surface.EXPECT().SetPointerShape(layout.PointerColResize),
		surface.EXPECT().SetSelectionEnabled(false),
		// inner: vertical, no second snapshot
		surface.EXPECT().SetPointerShape(layout.PointerRowResize),
		surface.EXPECT().SetSelectionEnabled(false),
		// inner released: outer shape comes back
		surface.EXPECT().SetPointerShape(layout.PointerColResize),
		surface.EXPECT().SetSelectionEnabled(false),
		// outer released: original state restored
		surface.EXPECT().SetPointerShape(""),
		surface.EXPECT().SetSelectionEnabled(true),
	)
	style := layout.NewDragStyle(surface)

	// Act
	releaseOuter := style.Acquire(entity.AxisHorizontal)
	releaseInner := style.Acquire(entity.AxisVertical)
	assert.Equal(t, 2, style.Holds())

	releaseInner()
	releaseOuter()

	// Assert
	assert.Equal(t, 0, style.Holds())
}

func TestDragStyle_ReleaseOutOfOrderKeepsTop(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	surface := mocks.NewMockStyleSurface(ctrl)
	gomock.InOrder(
		surface.EXPECT().PointerShape().Return(""),
		surface.EXPECT().SelectionEnabled().Return(false),
		surface.EXPECT().SetPointerShape(layout.PointerColResize),
		surface.EXPECT().SetSelectionEnabled(false),
		surface.EXPECT().SetPointerShape(layout.PointerRowResize),
		surface.EXPECT().SetSelectionEnabled(false),
		// outer released first: nothing to apply; inner released: snapshot back
		surface.EXPECT().SetPointerShape(""),
		surface.EXPECT().SetSelectionEnabled(false),
	)
	style := layout.NewDragStyle(surface)

	// Act
	releaseOuter := style.Acquire(entity.AxisHorizontal)
	releaseInner := style.Acquire(entity.AxisVertical)
	releaseOuter()
	assert.Equal(t, 1, style.Holds())
	releaseInner()

	// Assert
	assert.Equal(t, 0, style.Holds())
}

func TestDragStyle_NilSurface(t *testing.T) {
	style := layout.NewDragStyle(nil)

	release := style.Acquire(entity.AxisVertical)
	release()

	assert.Equal(t, 0, style.Holds())
}

func TestTerminalSurface_WritesPointerShape(t *testing.T) {
	var buf bytes.Buffer
	surface := layout.NewTerminalSurface(&buf)

	assert.True(t, surface.SelectionEnabled())
	assert.Empty(t, surface.PointerShape())

	surface.SetPointerShape(layout.PointerRowResize)
	surface.SetSelectionEnabled(false)

	assert.Equal(t, "\x1b]22;row-resize\a", buf.String())
	assert.Equal(t, layout.PointerRowResize, surface.PointerShape())
	assert.False(t, surface.SelectionEnabled())

	buf.Reset()
	surface.SetPointerShape("")
	assert.Equal(t, "\x1b]22;default\a", buf.String())
}

func TestResizable_DragStyleFollowsSession(t *testing.T) {
	// Arrange
	surface := layout.NewTerminalSurface(nil)
	style := layout.NewDragStyle(surface)
	d := layout.NewDispatcher()

	outer := layout.NewResizable(context.Background(), layout.ResizableOptions{
		Container: func() entity.Rect { return entity.Rect{Width: 100, Height: 100} },
		Target:    d,
		Style:     style,
	})
	inner := layout.NewResizable(context.Background(), layout.ResizableOptions{
		Container: func() entity.Rect { return entity.Rect{Width: 50, Height: 50} },
		Target:    d,
		Style:     style,
	})

	// Act + Assert
	require.True(t, outer.StartDrag(entity.AxisHorizontal))
	assert.Equal(t, layout.PointerColResize, surface.PointerShape())
	assert.False(t, surface.SelectionEnabled())

	require.True(t, inner.StartDrag(entity.AxisVertical))
	assert.Equal(t, layout.PointerRowResize, surface.PointerShape())

	inner.Close()
	assert.Equal(t, layout.PointerColResize, surface.PointerShape())
	assert.False(t, surface.SelectionEnabled())

	outer.PointerUp()
	assert.Empty(t, surface.PointerShape())
	assert.True(t, surface.SelectionEnabled())
	assert.Equal(t, 0, style.Holds())
	assert.Equal(t, 0, d.Len())
}
