// Package surface provides the drawing-surface collaborator consumed by
// the plot lifecycle: a provisioned canvas with known pixel dimensions,
// background styling, and attach/detach semantics against a parent
// container.
package surface

import (
	"fmt"
	"sync"
)

// Surface is a provisioned drawing canvas. The plot core only sizes,
// styles, and disposes it; actual pixel drawing belongs to the rendering
// engine behind the View boundary.
type Surface interface {
	// Width returns the canvas width in pixels.
	Width() float64
	// Height returns the canvas height in pixels.
	Height() float64
	// SetBackground styles the canvas background color.
	SetBackground(color string)
	// Resize changes the pixel dimensions of the canvas.
	Resize(width, height float64)
	// Detach removes the canvas from its parent container.
	Detach()
	// Dispose releases the canvas. Implies Detach.
	Dispose()
}

// Container is a named slot that surfaces attach to, playing the role a
// host element plays in a browser runtime.
type Container struct {
	mu       sync.Mutex
	id       string
	width    float64
	height   float64
	children []*MemorySurface
}

// NewContainer creates a container with the given identifier and pixel
// dimensions.
func NewContainer(id string, width, height float64) *Container {
	return &Container{id: id, width: width, height: height}
}

// ID returns the container identifier.
func (c *Container) ID() string {
	return c.id
}

// Width returns the container width in pixels.
func (c *Container) Width() float64 {
	return c.width
}

// Height returns the container height in pixels.
func (c *Container) Height() float64 {
	return c.height
}

// ChildCount reports how many surfaces are currently attached.
func (c *Container) ChildCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.children)
}

func (c *Container) attach(s *MemorySurface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = append(c.children, s)
}

func (c *Container) detach(s *MemorySurface) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, child := range c.children {
		if child == s {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// MemorySurface is a software Surface attached to a Container. It keeps
// no pixel buffer; it records the state the plot core manages.
type MemorySurface struct {
	parent     *Container
	width      float64
	height     float64
	background string
	attached   bool
	disposed   bool
}

// NewMemorySurface provisions a surface sized to the container and
// attaches it.
func NewMemorySurface(parent *Container) *MemorySurface {
	s := &MemorySurface{
		parent:   parent,
		width:    parent.Width(),
		height:   parent.Height(),
		attached: true,
	}
	parent.attach(s)
	return s
}

func (s *MemorySurface) Width() float64  { return s.width }
func (s *MemorySurface) Height() float64 { return s.height }

// Background returns the current background color.
func (s *MemorySurface) Background() string { return s.background }

func (s *MemorySurface) SetBackground(color string) {
	s.background = color
}

func (s *MemorySurface) Resize(width, height float64) {
	s.width = width
	s.height = height
}

// Attached reports whether the surface is still held by its container.
func (s *MemorySurface) Attached() bool { return s.attached }

// Disposed reports whether Dispose has been called.
func (s *MemorySurface) Disposed() bool { return s.disposed }

func (s *MemorySurface) Detach() {
	if !s.attached {
		return
	}
	s.attached = false
	s.parent.detach(s)
}

func (s *MemorySurface) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.Detach()
}

// Registry resolves container references. A reference may be a
// *Container directly or a registered string identifier.
type Registry struct {
	mu         sync.RWMutex
	containers map[string]*Container
}

// NewRegistry creates an empty container registry.
func NewRegistry() *Registry {
	return &Registry{containers: make(map[string]*Container)}
}

// Register makes a container resolvable by its identifier.
func (r *Registry) Register(c *Container) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.containers[c.ID()] = c
}

// Resolve turns a container reference into a concrete Container. It
// fails when the reference type is unsupported or the identifier is
// unknown, so construction can fail fast on a bad container.
func (r *Registry) Resolve(ref any) (*Container, error) {
	switch v := ref.(type) {
	case *Container:
		if v == nil {
			return nil, fmt.Errorf("nil container")
		}
		return v, nil
	case string:
		r.mu.RLock()
		defer r.mu.RUnlock()
		c, ok := r.containers[v]
		if !ok {
			return nil, fmt.Errorf("container %q not found", v)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported container reference %T", ref)
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide container registry.
func DefaultRegistry() *Registry {
	return defaultRegistry
}
