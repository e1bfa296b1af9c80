// Package reorder holds the drag-and-drop reorder session used by admin
// clients. It keeps the working order in memory and persists it only on an
// explicit Save.
package reorder

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// State is the widget's interaction state.
type State int

const (
	Idle State = iota
	Dragging
	Dropped
	Saving
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	case Saving:
		return "saving"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	ErrUnsavedChanges = errors.New("reorder: unsaved changes")
	ErrNothingToSave  = errors.New("reorder: nothing to save")
	ErrSaveInFlight   = errors.New("reorder: save already in progress")
	ErrUnknownItem    = errors.New("reorder: unknown item")
	ErrClosed         = errors.New("reorder: widget closed")
)

// Saver persists a complete order and returns the order actually stored.
type Saver interface {
	SaveOrder(ctx context.Context, ids []int64) ([]int64, error)
}

// Box is the vertical extent of a rendered item.
type Box struct {
	Top    float64
	Height float64
}

// Mid returns the vertical midpoint of the box.
func (b Box) Mid() float64 { return b.Top + b.Height/2 }

// Widget is safe for concurrent use.
type Widget struct {
	mu      sync.Mutex
	saver   Saver
	items   []int64
	saved   []int64
	preDrag []int64
	state   State
	dragged int64
	unsaved bool
	closed  bool
}

// New creates a widget over ids in their current server order.
func New(ids []int64, saver Saver) *Widget {
	return &Widget{
		saver: saver,
		items: slices.Clone(ids),
		saved: slices.Clone(ids),
	}
}

// Order returns a copy of the working order.
func (w *Widget) Order() []int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.items)
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// HasUnsavedChanges reports whether the working order differs from the last
// saved one.
func (w *Widget) HasUnsavedChanges() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.unsaved
}

// BeginDrag picks up id.
func (w *Widget) BeginDrag(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}
	if w.state == Dragging {
		return fmt.Errorf("reorder: already dragging %d", w.dragged)
	}
	if !slices.Contains(w.items, id) {
		return fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	w.preDrag = slices.Clone(w.items)
	w.dragged = id
	w.state = Dragging
	return nil
}

// Hover reports the pointer over item id whose box is given. The dragged
// item moves into id's slot only once pointerY has crossed the box midpoint
// in the direction of travel. It returns whether the order changed.
func (w *Widget) Hover(id int64, pointerY float64, box Box) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return false, ErrClosed
	}
	if w.state != Dragging {
		return false, fmt.Errorf("reorder: hover while %s", w.state)
	}
	if id == w.dragged {
		return false, nil
	}

	from := slices.Index(w.items, w.dragged)
	to := slices.Index(w.items, id)
	if to < 0 {
		return false, fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}

	// Moving down: wait until the pointer is below the midpoint. Moving up:
	// wait until it is above.
	if from < to && pointerY < box.Mid() {
		return false, nil
	}
	if from > to && pointerY > box.Mid() {
		return false, nil
	}

	w.items = move(w.items, from, to)
	return true, nil
}

// Drop releases the dragged item and returns the full working order.
func (w *Widget) Drop() ([]int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil, ErrClosed
	}
	if w.state != Dragging {
		return nil, fmt.Errorf("reorder: drop while %s", w.state)
	}
	w.preDrag = nil
	w.settle()
	return slices.Clone(w.items), nil
}

// Cancel abandons the current drag and restores the order it started from.
func (w *Widget) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != Dragging {
		return
	}
	w.items = w.preDrag
	w.preDrag = nil
	w.settle()
}

// MoveTo places id at index in one step, as keyboard reordering does.
func (w *Widget) MoveTo(id int64, index int) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.editable(); err != nil {
		return err
	}
	if w.state == Dragging {
		return fmt.Errorf("reorder: move while dragging %d", w.dragged)
	}
	from := slices.Index(w.items, id)
	if from < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownItem, id)
	}
	if index < 0 || index >= len(w.items) {
		return fmt.Errorf("reorder: index %d out of range [0,%d)", index, len(w.items))
	}
	w.items = move(w.items, from, index)
	w.settle()
	return nil
}

// Save persists the working order. On success the server's order replaces
// the working order and the unsaved flag is cleared; on failure the changes
// are kept so the caller can retry.
func (w *Widget) Save(ctx context.Context) error {
	w.mu.Lock()
	if err := w.editable(); err != nil {
		w.mu.Unlock()
		return err
	}
	if w.state == Dragging {
		w.mu.Unlock()
		return fmt.Errorf("reorder: save while dragging %d", w.dragged)
	}
	if !w.unsaved {
		w.mu.Unlock()
		return ErrNothingToSave
	}
	order := slices.Clone(w.items)
	w.state = Saving
	w.mu.Unlock()

	stored, err := w.saver.SaveOrder(ctx, order)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = Dropped
		return fmt.Errorf("save order: %w", err)
	}
	w.items = slices.Clone(stored)
	w.saved = slices.Clone(stored)
	w.unsaved = false
	w.state = Idle
	return nil
}

// Close ends the session. Pending or in-flight changes block Close unless
// force is set.
func (w *Widget) Close(force bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	if !force && (w.unsaved || w.state == Saving) {
		return ErrUnsavedChanges
	}
	w.closed = true
	return nil
}

func (w *Widget) editable() error {
	if w.closed {
		return ErrClosed
	}
	if w.state == Saving {
		return ErrSaveInFlight
	}
	return nil
}

// settle leaves the drag and derives the resting state from the working order.
func (w *Widget) settle() {
	w.unsaved = !slices.Equal(w.items, w.saved)
	if w.unsaved {
		w.state = Dropped
	} else {
		w.state = Idle
	}
}

func move(ids []int64, from, to int) []int64 {
	out := slices.Clone(ids)
	id := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, id)
}
