package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"energy-viewer/adapter"
	"energy-viewer/api"
	"energy-viewer/api/smoothing"
	"energy-viewer/chart"
	"energy-viewer/dao/redis"
	"energy-viewer/feedback"
	"energy-viewer/models"
	"energy-viewer/session"
)

// StatusKind classifies the text shown in the page status region.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusInfo
	StatusError
)

// Status is the message written into the status region.
type Status struct {
	Kind    StatusKind
	Message string
}

func (s Status) IsError() bool {
	return s.Kind == StatusError
}

// join keeps the more severe kind and appends the messages.
func (s Status) join(other Status) Status {
	if other.Kind == StatusNone {
		return s
	}
	if s.Kind == StatusNone {
		return other
	}
	kind := s.Kind
	if other.Kind > kind {
		kind = other.Kind
	}
	return Status{Kind: kind, Message: s.Message + " " + other.Message}
}

// View is everything the page needs after one request.
type View struct {
	State      session.State
	Spec       chart.ChartSpec
	ChartHTML  []byte
	Status     Status
	Highlights []feedback.Highlight
	// Superseded is set when a newer request of the same session was issued
	// before this one completed; the chart is then the newest committed one.
	Superseded bool
}

// ViewService drives the load, replot and optimize flows of the energy view.
type ViewService struct {
	smoothingAPI smoothing.SmoothingAPI
	seriesDao    *redis.RedisSeriesDAO
	options      chart.Options
	sequencer    *session.Sequencer

	mu        sync.Mutex
	renderers map[string]*chart.Renderer
}

// NewViewService constructs a ViewService. seriesDao may be nil to disable caching.
func NewViewService(
	smoothingAPI smoothing.SmoothingAPI,
	seriesDao *redis.RedisSeriesDAO,
	options chart.Options) *ViewService {

	return &ViewService{
		smoothingAPI: smoothingAPI,
		seriesDao:    seriesDao,
		options:      options,
		sequencer:    session.NewSequencer(),
		renderers:    make(map[string]*chart.Renderer),
	}
}

// Load seeds a new session from /energyData, applies the default parameters
// and renders the first smoothing result.
func (vs *ViewService) Load(ctx context.Context) (*View, error) {
	dataset, err := vs.energyData(ctx)
	if err != nil {
		log.WithError(err).Println("[ViewService] Failed to load energy data")
		state := session.New(nil)
		ticket := vs.sequencer.Issue(state.ID)
		defer vs.sequencer.Done(state.ID)
		return vs.commit(state, ticket, nil, transportStatus(err), nil)
	}

	state := session.New(dataset)
	ticket := vs.sequencer.Issue(state.ID)
	defer vs.sequencer.Done(state.ID)
	log.Printf("[ViewService] New session %s", state.ID)
	return vs.smooth(ctx, state, ticket, Status{}, nil)
}

// Replot re-renders the session with its current parameters.
func (vs *ViewService) Replot(ctx context.Context, state session.State) (*View, error) {
	ticket := vs.sequencer.Issue(state.ID)
	defer vs.sequencer.Done(state.ID)
	return vs.smooth(ctx, state, ticket, Status{}, nil)
}

// Optimize asks the backend for the best smoothing factors, copies them into
// the form and re-renders with a smoothing request built from the copied values.
func (vs *ViewService) Optimize(ctx context.Context, state session.State) (*View, error) {
	ticket := vs.sequencer.Issue(state.ID)
	defer vs.sequencer.Done(state.ID)

	body := adapter.BuildOptimizeRequest(state.Params.SeasonLength, state.Params.ValuesToForecast, state.Dataset)
	resp, err := vs.smoothingAPI.Optimize(ctx, body)
	if err != nil {
		log.WithError(err).Printf("[ViewService] Optimize failed for session %s", state.ID)
		return vs.keep(state, ticket, transportStatus(err))
	}

	next, highlights := feedback.ApplyOptimizedParams(state, resp)
	log.Printf("[ViewService] Applied optimized params sf=%s tsf=%s ssf=%s for session %s",
		next.Params.SmoothingFactor, next.Params.TrendSmoothingFactor, next.Params.SeasonSmoothingFactor, state.ID)

	status := Status{}
	if resp.Error.IsProblem() {
		status = problemStatus(resp.Error)
	}
	return vs.smooth(ctx, next, ticket, status, highlights)
}

// CurrentSpec returns the last committed chart spec of a session.
func (vs *ViewService) CurrentSpec(sessionID string) (chart.ChartSpec, bool) {
	vs.mu.Lock()
	r, ok := vs.renderers[sessionID]
	vs.mu.Unlock()
	if !ok || r.Current() == nil {
		return chart.ChartSpec{}, false
	}
	return r.Current().Spec, true
}

// SweepSessions releases the charts of sessions idle for longer than ttl.
// Sessions with a request in flight are kept.
func (vs *ViewService) SweepSessions(ttl time.Duration) int {
	ids := vs.sequencer.Sweep(ttl)
	vs.mu.Lock()
	defer vs.mu.Unlock()
	for _, id := range ids {
		// a request issued since the sweep brought the session back
		if vs.sequencer.Tracks(id) {
			continue
		}
		if r, ok := vs.renderers[id]; ok {
			r.Current().Release()
			delete(vs.renderers, id)
		}
	}
	if len(ids) > 0 {
		log.Printf("[ViewService] Swept %d idle sessions", len(ids))
	}
	return len(ids)
}

// StartSessionSweeper launches the background sweep loop at the given interval.
func (vs *ViewService) StartSessionSweeper(interval, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			vs.SweepSessions(ttl)
		}
	}()
}

func (vs *ViewService) smooth(ctx context.Context, state session.State, ticket uint64, status Status, highlights []feedback.Highlight) (*View, error) {
	payload, err := vs.fetchSmoothing(ctx, state)
	if err != nil {
		log.WithError(err).Printf("[ViewService] HoltWinters failed for session %s", state.ID)
		view, kerr := vs.keep(state, ticket, status.join(transportStatus(err)))
		if view != nil {
			view.Highlights = highlights
		}
		return view, kerr
	}
	return vs.commit(state, ticket, payload, status.join(payloadStatus(payload)), highlights)
}

// fetchSmoothing issues /holtWinters, consulting the cache first. An empty
// dataset has nothing to smooth and yields an empty payload without a request.
func (vs *ViewService) fetchSmoothing(ctx context.Context, state session.State) (*models.SeriesPayload, error) {
	if state.Dataset.IsEmpty() {
		return &models.SeriesPayload{}, nil
	}

	body := adapter.BuildSmoothingRequest(state.Params, state.Dataset)
	if vs.seriesDao != nil {
		cached, err := vs.seriesDao.GetSmoothingResult(body)
		if err != nil {
			log.WithError(err).Println("[ViewService] Smoothing cache lookup failed")
		} else if cached != nil {
			log.Debugf("[ViewService] Smoothing cache hit for session %s", state.ID)
			return cached, nil
		}
	}

	payload, err := vs.smoothingAPI.HoltWinters(ctx, body)
	if err != nil {
		return nil, err
	}
	if vs.seriesDao != nil {
		if err := vs.seriesDao.SetSmoothingResult(body, payload); err != nil {
			log.WithError(err).Println("[ViewService] Failed to cache smoothing result")
		}
	}
	return payload, nil
}

func (vs *ViewService) energyData(ctx context.Context) (models.Dataset, error) {
	if vs.seriesDao != nil {
		cached, err := vs.seriesDao.GetEnergyData()
		if err != nil {
			log.WithError(err).Println("[ViewService] Energy data cache lookup failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	dataset, err := vs.smoothingAPI.GetEnergyData(ctx)
	if err != nil {
		return nil, err
	}
	if vs.seriesDao != nil {
		if err := vs.seriesDao.SetEnergyData(dataset); err != nil {
			log.WithError(err).Println("[ViewService] Failed to cache energy data")
		}
	}
	return dataset, nil
}

// commit renders payload for the session unless a newer request superseded
// ticket. The ticket is checked again under the renderer's swap, so a newer
// request that finished first is never overwritten.
func (vs *ViewService) commit(state session.State, ticket uint64, payload *models.SeriesPayload, status Status, highlights []feedback.Highlight) (*View, error) {
	renderer := vs.renderer(state.ID)
	isCurrent := func() bool { return vs.sequencer.IsCurrent(state.ID, ticket) }
	if !isCurrent() {
		log.Printf("[ViewService] Discarding superseded response %d for session %s", ticket, state.ID)
		return vs.currentView(state, renderer, status, highlights, true), nil
	}

	h, err := renderer.Build(payload)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", state.ID, err)
	}
	if !renderer.Commit(h, isCurrent) {
		log.Printf("[ViewService] Response %d for session %s was superseded while rendering", ticket, state.ID)
		return vs.currentView(state, renderer, status, highlights, true), nil
	}
	return &View{
		State:      state,
		Spec:       h.Spec,
		ChartHTML:  h.HTML(),
		Status:     status,
		Highlights: highlights,
	}, nil
}

// keep answers a failed request with the chart already on display, or an empty
// one if nothing was rendered yet.
func (vs *ViewService) keep(state session.State, ticket uint64, status Status) (*View, error) {
	renderer := vs.renderer(state.ID)
	if renderer.Current() == nil {
		return vs.commit(state, ticket, nil, status, nil)
	}
	return vs.currentView(state, renderer, status, nil, !vs.sequencer.IsCurrent(state.ID, ticket)), nil
}

func (vs *ViewService) currentView(state session.State, renderer *chart.Renderer, status Status, highlights []feedback.Highlight, superseded bool) *View {
	view := &View{State: state, Status: status, Highlights: highlights, Superseded: superseded}
	if h := renderer.Current(); h != nil {
		view.Spec = h.Spec
		view.ChartHTML = h.HTML()
	}
	return view
}

func (vs *ViewService) renderer(sessionID string) *chart.Renderer {
	vs.mu.Lock()
	defer vs.mu.Unlock()
	r, ok := vs.renderers[sessionID]
	if !ok {
		r = chart.NewRenderer(vs.options)
		vs.renderers[sessionID] = r
	}
	return r
}

func transportStatus(err error) Status {
	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return Status{Kind: StatusError, Message: "Smoothing service unavailable: " + transportErr.Error()}
	}
	return Status{Kind: StatusError, Message: "Smoothing service returned an unreadable response: " + err.Error()}
}

func problemStatus(e models.ServerError) Status {
	return Status{Kind: StatusError, Message: "Smoothing service reported an error: " + e.Message}
}

func payloadStatus(payload *models.SeriesPayload) Status {
	switch {
	case payload.Error.IsProblem():
		return problemStatus(payload.Error)
	case payload.Error.Measure != nil:
		return Status{Kind: StatusInfo, Message: "SMAPE: " + strconv.FormatFloat(*payload.Error.Measure, 'f', -1, 64)}
	default:
		return Status{}
	}
}
