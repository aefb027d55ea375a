package plot

import (
	"github.com/go-plotkit/plotkit/pkg/config"
	"github.com/go-plotkit/plotkit/pkg/render"
)

// EventNameMap resolves declared handler keys (onClick) to the event
// identifiers the rendering engine dispatches (click). Unmapped keys
// pass through unchanged.
type EventNameMap map[string]string

// DefaultEventNames returns the standard handler-key mapping.
func DefaultEventNames() EventNameMap {
	return EventNameMap{
		"onClick":      "click",
		"onDblClick":   "dblclick",
		"onMouseDown":  "mousedown",
		"onMouseUp":    "mouseup",
		"onMouseMove":  "mousemove",
		"onMouseEnter": "mouseenter",
		"onMouseLeave": "mouseleave",
		"onTouchStart": "touchstart",
		"onTouchMove":  "touchmove",
		"onTouchEnd":   "touchend",
	}
}

// binding records one subscription made in the current epoch so it can
// be removed exactly, and only it, on unbind.
type binding struct {
	name   string
	cancel func()
}

// EventBinder attaches user-declared handlers to a drawable view and
// retires them wholesale at the end of the epoch.
type EventBinder struct {
	view     render.View
	nameMap  EventNameMap
	bindings []binding
}

// NewEventBinder creates a binder for one view. A nil name map selects
// the defaults.
func NewEventBinder(view render.View, nameMap EventNameMap) *EventBinder {
	if nameMap == nil {
		nameMap = DefaultEventNames()
	}
	return &EventBinder{view: view, nameMap: nameMap}
}

// Bind subscribes every non-nil handler under its resolved event name.
// Binding is additive within the epoch.
func (b *EventBinder) Bind(events map[string]config.EventHandler) {
	for declared, handler := range events {
		if handler == nil {
			continue
		}
		name, ok := b.nameMap[declared]
		if !ok {
			name = declared
		}
		cancel := b.view.On(name, render.Handler(handler))
		b.bindings = append(b.bindings, binding{name: name, cancel: cancel})
	}
}

// UnbindAll removes exactly the subscriptions created in this epoch.
func (b *EventBinder) UnbindAll() {
	for _, bound := range b.bindings {
		bound.cancel()
	}
	b.bindings = nil
}

// Count returns the number of live bindings.
func (b *EventBinder) Count() int {
	return len(b.bindings)
}
