package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySurfaceAttachDetach(t *testing.T) {
	c := NewContainer("chart", 640, 480)
	s := NewMemorySurface(c)

	assert.Equal(t, 640.0, s.Width())
	assert.Equal(t, 480.0, s.Height())
	assert.True(t, s.Attached())
	assert.Equal(t, 1, c.ChildCount())

	s.Detach()

	assert.False(t, s.Attached())
	assert.Equal(t, 0, c.ChildCount())

	// Detach again is a no-op.
	s.Detach()
	assert.Equal(t, 0, c.ChildCount())
}

func TestMemorySurfaceDispose(t *testing.T) {
	c := NewContainer("chart", 100, 100)
	s := NewMemorySurface(c)
	s.SetBackground("#fff")

	s.Dispose()

	assert.True(t, s.Disposed())
	assert.False(t, s.Attached())
	assert.Equal(t, "#fff", s.Background())

	s.Dispose()
	assert.True(t, s.Disposed())
}

func TestMemorySurfaceResize(t *testing.T) {
	c := NewContainer("chart", 100, 100)
	s := NewMemorySurface(c)

	s.Resize(800, 600)

	assert.Equal(t, 800.0, s.Width())
	assert.Equal(t, 600.0, s.Height())
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	c := NewContainer("main", 300, 200)
	r.Register(c)

	got, err := r.Resolve("main")
	require.NoError(t, err)
	assert.Same(t, c, got)

	got, err = r.Resolve(c)
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestRegistryResolveFailures(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("missing")
	assert.Error(t, err)

	_, err = r.Resolve(42)
	assert.Error(t, err)

	_, err = r.Resolve((*Container)(nil))
	assert.Error(t, err)
}
