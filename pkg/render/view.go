// Package render defines the boundary to the underlying rendering
// engine: a drawable view constructed from an assembled rendering
// configuration and explicit viewport coordinates. BasicView is a
// recording engine used headless and in tests; real engines implement
// View behind a Factory.
package render

import (
	"sync"

	"github.com/go-plotkit/plotkit/pkg/config"
	"github.com/go-plotkit/plotkit/pkg/geom"
)

// Handler receives the payload of a view event.
type Handler func(payload any)

// View is a drawable view bound to one lifecycle epoch. All methods are
// synchronous; Destroy retires the view and drops its subscriptions.
type View interface {
	// Render draws the view. With suppressEffects the pass is
	// measurement-only: layout-dependent primitives are created but no
	// visible side effects (animation, event replay) fire.
	Render(suppressEffects bool)
	// ChangeData rebinds the data without re-running assembly or layout.
	ChangeData(data []config.Record)
	// Destroy releases the view and all its subscriptions.
	Destroy()
	// On subscribes a handler to an event type and returns the
	// unsubscribe function for exactly that registration.
	On(eventType string, h Handler) (cancel func())
}

// Factory constructs a View from an assembled configuration and the
// start/end viewport coordinates of the drawable region.
type Factory func(cfg *config.RenderingConfig, start, end geom.Point) View

// BasicView is an in-memory View that records render passes, data
// changes, and subscriptions. It backs headless use of the plot core and
// makes the two-pass auto-padding protocol observable.
type BasicView struct {
	mu          sync.Mutex
	cfg         *config.RenderingConfig
	start       geom.Point
	end         geom.Point
	data        []config.Record
	renders     int
	provisional int
	destroyed   bool
	handlers    map[string]map[int]Handler
	nextID      int
}

// NewBasicView creates a recording view. It satisfies Factory.
func NewBasicView(cfg *config.RenderingConfig, start, end geom.Point) View {
	return &BasicView{
		cfg:      cfg,
		start:    start,
		end:      end,
		data:     cfg.Data,
		handlers: make(map[string]map[int]Handler),
	}
}

// Config returns the rendering configuration the view was built from.
func (v *BasicView) Config() *config.RenderingConfig {
	return v.cfg
}

// Start returns the top-left viewport coordinate.
func (v *BasicView) Start() geom.Point { return v.start }

// End returns the bottom-right viewport coordinate.
func (v *BasicView) End() geom.Point { return v.end }

func (v *BasicView) Render(suppressEffects bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	v.renders++
	if suppressEffects {
		v.provisional++
	}
}

func (v *BasicView) ChangeData(data []config.Record) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	v.data = data
}

func (v *BasicView) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destroyed = true
	v.handlers = nil
}

func (v *BasicView) On(eventType string, h Handler) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed || h == nil {
		return func() {}
	}
	if v.handlers[eventType] == nil {
		v.handlers[eventType] = make(map[int]Handler)
	}
	id := v.nextID
	v.nextID++
	v.handlers[eventType][id] = h
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.handlers == nil {
			return
		}
		delete(v.handlers[eventType], id)
		if len(v.handlers[eventType]) == 0 {
			delete(v.handlers, eventType)
		}
	}
}

// Emit dispatches an event to every handler subscribed to eventType.
func (v *BasicView) Emit(eventType string, payload any) {
	v.mu.Lock()
	subscribed := make([]Handler, 0, len(v.handlers[eventType]))
	for _, h := range v.handlers[eventType] {
		subscribed = append(subscribed, h)
	}
	v.mu.Unlock()
	for _, h := range subscribed {
		h(payload)
	}
}

// Data returns the currently bound records.
func (v *BasicView) Data() []config.Record {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data
}

// RenderCount returns the total number of render passes.
func (v *BasicView) RenderCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renders
}

// ProvisionalRenderCount returns the number of measurement-only passes.
func (v *BasicView) ProvisionalRenderCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.provisional
}

// HandlerCount returns the number of live subscriptions across all event
// types.
func (v *BasicView) HandlerCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	total := 0
	for _, hs := range v.handlers {
		total += len(hs)
	}
	return total
}

// Destroyed reports whether Destroy has been called.
func (v *BasicView) Destroyed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.destroyed
}
