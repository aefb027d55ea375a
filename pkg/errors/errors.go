// Package errors provides structured error handling for plotkit.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrDestroyed is returned when an operation is invoked on a plot whose
// lifecycle has already terminated.
var ErrDestroyed = stderrors.New("plot instance destroyed")

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a malformed or incomplete plot configuration.
	KindConfig
	// KindLifecycle indicates misuse of the plot lifecycle, such as
	// updating a destroyed instance.
	KindLifecycle
	// KindLayout indicates a layout computation error.
	KindLayout
	// KindRender indicates a rendering error.
	KindRender
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindLayout:
		return "layout"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// PlotError represents a structured error raised by the charting core.
type PlotError struct {
	// Op is the operation that failed (e.g., "plot.UpdateConfig").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *PlotError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PlotError) Unwrap() error {
	return e.Err
}

// New builds a PlotError from an operation, kind, and message.
func New(op string, kind ErrorKind, format string, args ...any) *PlotError {
	return &PlotError{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches operation and kind metadata to an existing error.
// It returns nil when err is nil.
func Wrap(op string, kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &PlotError{Op: op, Kind: kind, Err: err}
}

// Destroyed builds the lifecycle-misuse error for an operation invoked
// after Destroy.
func Destroyed(op string) error {
	return &PlotError{Op: op, Kind: KindLifecycle, Err: ErrDestroyed}
}

// IsDestroyed reports whether err signals use of a destroyed instance.
func IsDestroyed(err error) bool {
	return stderrors.Is(err, ErrDestroyed)
}
