package chart

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	log "github.com/sirupsen/logrus"

	"energy-viewer/models"
)

// Handle owns one rendered chart instance.
type Handle struct {
	Spec ChartSpec

	mu       sync.RWMutex
	line     *charts.Line
	html     []byte
	released bool
}

// HTML returns the standalone chart document, or nil once released.
func (h *Handle) HTML() []byte {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.html
}

// Line returns the go-echarts chart, or nil once released.
func (h *Handle) Line() *charts.Line {
	if h == nil {
		return nil
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.line
}

// Released reports whether Release was called.
func (h *Handle) Released() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.released
}

// Release drops the chart instance. Calling it more than once is a no-op.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.line = nil
	h.html = nil
	h.released = true
}

// Renderer owns the single chart shown in the display region. Each Render
// replaces the previous chart; nothing carries over between renders.
type Renderer struct {
	mu      sync.Mutex
	options Options
	current *Handle
}

func NewRenderer(options Options) *Renderer {
	return &Renderer{options: options}
}

// Render builds a new chart from payload and releases the one it replaces.
func (r *Renderer) Render(payload *models.SeriesPayload) (*Handle, error) {
	h, err := r.Build(payload)
	if err != nil {
		return nil, err
	}
	r.Commit(h, nil)
	return h, nil
}

// Build renders payload into a handle without displaying it. Building takes no
// lock, so concurrent requests never wait on each other's rendering.
func (r *Renderer) Build(payload *models.SeriesPayload) (*Handle, error) {
	spec := BuildChartSpec(payload, r.options)
	line := spec.Line()

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return &Handle{Spec: spec, line: line, html: buf.Bytes()}, nil
}

// Commit displays h in place of the current chart. isCurrent, when set, is
// checked while the swap is held exclusive; if it reports false, h is released
// instead and the current chart stays. Commit reports whether h was displayed.
func (r *Renderer) Commit(h *Handle, isCurrent func() bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if isCurrent != nil && !isCurrent() {
		h.Release()
		return false
	}
	if r.current != nil {
		r.current.Release()
	}
	r.current = h
	log.WithField("axis", h.Spec.Axis.Kind.String()).
		Debugf("[Renderer] Rendered %d original and %d smoothed points", h.Spec.Series[0].Len(), h.Spec.Series[1].Len())
	return true
}

// Current returns the chart currently displayed, or nil before the first render.
func (r *Renderer) Current() *Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Options returns the chart options every render uses.
func (r *Renderer) Options() Options {
	return r.options
}
