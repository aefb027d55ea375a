// Package plot is the orchestration core of a declarative chart: it
// assembles the rendering configuration, computes the chrome layout,
// drives the two-pass auto-padding protocol, and owns the
// construct/update/destroy lifecycle of the drawable view and its
// collaborators.
package plot

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/go-plotkit/plotkit/pkg/chrome"
	"github.com/go-plotkit/plotkit/pkg/config"
	"github.com/go-plotkit/plotkit/pkg/errors"
	"github.com/go-plotkit/plotkit/pkg/geom"
	"github.com/go-plotkit/plotkit/pkg/render"
	"github.com/go-plotkit/plotkit/pkg/surface"
	"github.com/go-plotkit/plotkit/pkg/theme"
)

// State names a lifecycle phase of a Plot.
type State int

const (
	// StateUninitialized is the zero state before construction runs.
	StateUninitialized State = iota
	// StateInitializing covers the init sequence, including the
	// provisional auto-padding pass.
	StateInitializing
	// StateReady means the current epoch is live and renderable.
	StateReady
	// StateDestroyed is terminal; mutating operations fail fast.
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// BeforeInitHook is implemented by variants that need to run before the
// first init sequence.
type BeforeInitHook interface {
	BeforeInit(p *Plot)
}

// AfterInitHook is implemented by variants that need to run after init,
// once padding is final and the epoch is about to go live.
type AfterInitHook interface {
	AfterInit(p *Plot)
}

// Options carries the collaborators of a Plot. Every field is optional;
// nil fields select the defaults.
type Options struct {
	// Variant contributes the chart-type-specific configuration hooks.
	Variant config.Variant
	// Theme is the resolved visual theme; defaults to theme.Light.
	Theme *theme.Theme
	// Factory constructs the drawable view; defaults to the recording
	// BasicView engine.
	Factory render.Factory
	// Chrome renders title and description blocks.
	Chrome *chrome.Renderer
	// Registry resolves string container references.
	Registry *surface.Registry
	// EventNames maps declared handler keys to engine event names.
	EventNames EventNameMap
	// Logger receives lifecycle debug logging.
	Logger *log.Logger
}

// Plot owns one live lifecycle epoch: the assembled rendering
// configuration, the drawable view, the chrome blocks, and the event
// bindings. All methods are synchronous and must be called from a single
// goroutine.
type Plot struct {
	state   State
	epochID string

	container *surface.Container
	canvas    *surface.MemorySurface

	th         *theme.Theme
	variant    config.Variant
	assembler  *config.Assembler
	chromeR    *chrome.Renderer
	factory    render.Factory
	eventNames EventNameMap
	logger     *log.Logger

	// originalIntent is the immutable snapshot taken at construction; it
	// recalls whether padding was originally auto even after updates
	// overwrite the working configuration.
	originalIntent *config.PlotConfig
	working        *config.PlotConfig

	rendering   *config.RenderingConfig
	view        render.View
	title       *chrome.Block
	description *chrome.Block
	binder      *EventBinder

	participants []PaddingParticipant

	padding    geom.Padding
	viewMargin geom.BBox
}

// Construct resolves the container, provisions the canvas, and runs the
// full init sequence. A configuration error fails fast: no partially
// initialized instance is returned.
func Construct(container any, cfg *config.PlotConfig, opts Options) (*Plot, error) {
	const op = "plot.Construct"
	if cfg == nil {
		return nil, errors.New(op, errors.KindConfig, "nil plot configuration")
	}

	registry := opts.Registry
	if registry == nil {
		registry = surface.DefaultRegistry()
	}
	parent, err := registry.Resolve(container)
	if err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}

	p := &Plot{
		state:      StateUninitialized,
		container:  parent,
		th:         opts.Theme,
		variant:    opts.Variant,
		chromeR:    opts.Chrome,
		factory:    opts.Factory,
		eventNames: opts.EventNames,
		logger:     opts.Logger,
	}
	if p.th == nil {
		p.th = theme.Default()
	}
	if p.variant == nil {
		p.variant = config.BaseVariant{}
	}
	if p.chromeR == nil {
		p.chromeR = chrome.NewRenderer(nil)
	}
	if p.factory == nil {
		p.factory = render.NewBasicView
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	p.assembler = config.NewAssembler(p.variant)

	if p.originalIntent, err = cfg.Clone(); err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}
	if p.working, err = cfg.Clone(); err != nil {
		return nil, errors.Wrap(op, errors.KindConfig, err)
	}

	p.canvas = surface.NewMemorySurface(parent)
	p.canvas.SetBackground(p.th.Background)

	if hook, ok := p.variant.(BeforeInitHook); ok {
		hook.BeforeInit(p)
	}
	if err := p.initialize(); err != nil {
		p.retireEpoch()
		p.canvas.Dispose()
		return nil, err
	}
	return p, nil
}

// initialize runs the full init sequence against the working
// configuration, including the auto-padding measurement pass, and
// transitions to Ready.
func (p *Plot) initialize() error {
	p.state = StateInitializing

	auto := p.working.Padding.IsAuto()
	if err := p.initEpoch(nil, auto); err != nil {
		return err
	}
	if auto {
		final := p.measureAutoPadding()
		p.retireEpoch()
		if err := p.initEpoch(&final, false); err != nil {
			return err
		}
	}

	if hook, ok := p.variant.(AfterInitHook); ok {
		hook.AfterInit(p)
	}
	p.state = StateReady
	return nil
}

// initEpoch builds one lifecycle epoch: assembled configuration, chrome
// blocks, drawable view, and event bindings. With provisional set, a
// measurement-only render pass is issued so auto padding can observe
// real extents.
func (p *Plot) initEpoch(override *geom.Padding, provisional bool) error {
	p.epochID = uuid.NewString()

	padding := ResolvePadding(p.working.Padding)
	if override != nil {
		padding = *override
	}
	p.padding = padding

	panel := PanelRange(padding, p.canvas.Width(), p.canvas.Height())
	rendering, err := p.assembler.Assemble(p.working, p.th, panel)
	if err != nil {
		return err
	}
	p.rendering = rendering

	p.createChrome(rendering)

	var titleBounds, descBounds *geom.BBox
	if p.title != nil {
		b := p.title.Bounds()
		titleBounds = &b
	}
	if p.description != nil {
		b := p.description.Bounds()
		descBounds = &b
	}
	p.viewMargin = ViewMargin(titleBounds, descBounds, p.canvas.Height(), p.th.Description.BottomMargin)

	start := geom.Point{X: panel.MinX, Y: panel.MinY}
	if !p.viewMargin.IsZero() {
		start.Y = math.Max(start.Y, p.viewMargin.MaxY)
	}
	end := geom.Point{X: panel.MaxX, Y: panel.MaxY}
	p.view = p.factory(rendering, start, end)

	p.binder = NewEventBinder(p.view, p.eventNames)
	p.binder.Bind(p.working.Events)

	p.logger.Debug("plot epoch initialized",
		"epoch", p.epochID,
		"provisional", provisional,
		"padding", padding.Slice())

	if provisional && len(p.working.Data) > 0 {
		p.view.Render(true)
	}
	return nil
}

// createChrome places the title and description blocks. The description
// sits below the title's measured extent when a title exists.
func (p *Plot) createChrome(cfg *config.RenderingConfig) {
	if cfg.Title != nil {
		p.title = p.chromeR.Render(chrome.BlockSpec{
			Text:          cfg.Title.Text,
			X:             cfg.Title.LeftMargin,
			Y:             cfg.Title.TopMargin,
			MaxWidth:      cfg.Title.WrapWidth,
			Style:         cfg.Title.Style,
			AlignWithAxis: cfg.Title.AlignWithAxis,
		})
	}
	if cfg.Description != nil {
		top := cfg.Description.TopMargin
		if p.title != nil {
			top += p.title.Bounds().MaxY
		}
		p.description = p.chromeR.Render(chrome.BlockSpec{
			Text:          cfg.Description.Text,
			X:             cfg.Description.LeftMargin,
			Y:             top,
			MaxWidth:      cfg.Description.WrapWidth,
			Style:         cfg.Description.Style,
			AlignWithAxis: cfg.Description.AlignWithAxis,
		})
	}
}

// measureAutoPadding collects the measured extents of the chrome margin
// and every registered participant.
func (p *Plot) measureAutoPadding() geom.Padding {
	participants := make([]PaddingParticipant, 0, len(p.participants)+1)
	if !p.viewMargin.IsZero() {
		participants = append(participants, chromeParticipant{side: SideTop, bounds: p.viewMargin})
	}
	participants = append(participants, p.participants...)
	return AutoPadding(participants, p.th, p.canvas.Width(), p.canvas.Height())
}

// retireEpoch releases every resource of the current epoch: event
// bindings first, then chrome, then the drawable view. Disposal is
// best-effort and exhaustive so a failing step never leaks the rest.
func (p *Plot) retireEpoch() {
	if p.binder != nil {
		p.binder.UnbindAll()
		p.binder = nil
	}
	if p.title != nil {
		p.title.Dispose()
		p.title = nil
	}
	if p.description != nil {
		p.description.Dispose()
		p.description = nil
	}
	if p.view != nil {
		p.view.Destroy()
		p.view = nil
	}
}

// Render triggers a full draw pass. It is a no-op when no data is bound.
func (p *Plot) Render() error {
	if err := p.requireReady("plot.Render"); err != nil {
		return err
	}
	if len(p.working.Data) == 0 {
		return nil
	}
	p.view.Render(false)
	return nil
}

// ChangeData rebinds the data on the current view without re-running
// assembly or layout.
func (p *Plot) ChangeData(data []config.Record) error {
	if err := p.requireReady("plot.ChangeData"); err != nil {
		return err
	}
	p.working.Data = data
	p.view.ChangeData(data)
	return nil
}

// Repaint forces a redraw of the existing view without re-assembling the
// configuration.
func (p *Plot) Repaint() error {
	if err := p.requireReady("plot.Repaint"); err != nil {
		return err
	}
	p.view.Render(false)
	return nil
}

// UpdateConfig merges a partial configuration into the working
// configuration, retires the current epoch, and re-runs the full init
// sequence. A partial that omits padding does not cancel an originally
// auto layout: the original intent is restored before rebuilding.
func (p *Plot) UpdateConfig(partial *config.PlotConfig) error {
	const op = "plot.UpdateConfig"
	if p.state == StateDestroyed {
		return errors.Destroyed(op)
	}
	if p.state != StateReady {
		return errors.New(op, errors.KindLifecycle, "update while %s", p.state)
	}

	merged, err := config.Merge(p.working, partial)
	if err != nil {
		return errors.Wrap(op, errors.KindConfig, err)
	}
	if (partial == nil || !partial.Padding.IsSet()) && p.originalIntent.Padding.IsAuto() {
		merged.Padding = config.AutoPadding()
	}

	retired := p.epochID
	p.retireEpoch()
	p.working = merged
	if err := p.initialize(); err != nil {
		return err
	}
	p.logger.Debug("plot epoch retired", "epoch", retired, "successor", p.epochID)
	return nil
}

// ChangeSize resizes the canvas and re-runs layout and view
// construction against the new dimensions.
func (p *Plot) ChangeSize(width, height float64) error {
	if err := p.requireReady("plot.ChangeSize"); err != nil {
		return err
	}
	p.canvas.Resize(width, height)
	p.retireEpoch()
	return p.initialize()
}

// RegisterPaddingParticipant opts an externally-owned component into the
// auto-padding measurement set. It takes effect on the next init
// sequence.
func (p *Plot) RegisterPaddingParticipant(participant PaddingParticipant) error {
	if p.state == StateDestroyed {
		return errors.Destroyed("plot.RegisterPaddingParticipant")
	}
	if participant != nil {
		p.participants = append(p.participants, participant)
	}
	return nil
}

// Destroy retires the live epoch and releases the canvas. It is
// idempotent: a second call is a no-op and never re-disposes resources.
func (p *Plot) Destroy() {
	if p.state == StateDestroyed {
		return
	}
	p.retireEpoch()
	p.canvas.Dispose()
	p.state = StateDestroyed
	p.logger.Debug("plot destroyed", "epoch", p.epochID)
}

func (p *Plot) requireReady(op string) error {
	switch p.state {
	case StateDestroyed:
		return errors.Destroyed(op)
	case StateReady:
		return nil
	default:
		return errors.New(op, errors.KindLifecycle, "operation while %s", p.state)
	}
}

// State returns the current lifecycle state.
func (p *Plot) State() State { return p.state }

// EpochID identifies the live lifecycle epoch.
func (p *Plot) EpochID() string { return p.epochID }

// Theme returns the resolved theme.
func (p *Plot) Theme() *theme.Theme { return p.th }

// Data returns the currently bound records.
func (p *Plot) Data() []config.Record { return p.working.Data }

// RenderingConfig returns the assembled configuration of the live epoch.
func (p *Plot) RenderingConfig() *config.RenderingConfig { return p.rendering }

// View returns the drawable view of the live epoch.
func (p *Plot) View() render.View { return p.view }

// Surface returns the provisioned canvas.
func (p *Plot) Surface() surface.Surface { return p.canvas }

// Padding returns the concrete padding of the live epoch; for auto
// layouts this is the measured result.
func (p *Plot) Padding() geom.Padding { return p.padding }

// PanelRange returns the panel rectangle of the live epoch.
func (p *Plot) PanelRange() geom.BBox { return p.rendering.PanelRange }

// ViewMargin returns the chrome margin of the live epoch.
func (p *Plot) ViewMargin() geom.BBox { return p.viewMargin }

// Title returns the title chrome block, nil when no title is set.
func (p *Plot) Title() *chrome.Block { return p.title }

// Description returns the description chrome block, nil when no
// description is set.
func (p *Plot) Description() *chrome.Block { return p.description }
