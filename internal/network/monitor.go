// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/resto-sync/internal/config"
	"github.com/MKhiriev/resto-sync/internal/logger"
	"github.com/MKhiriev/resto-sync/internal/store"
	"github.com/MKhiriev/resto-sync/models"
)

// Monitor tracks connectivity, reachability and link quality.
type Monitor struct {
	cfg    config.ClientNetwork
	prober Prober
	events store.NetworkEventRepository
	logger *logger.Logger
	now    func() time.Time

	mu             sync.RWMutex
	state          models.NetworkState
	lastDisconnect time.Time
	stableTimer    *time.Timer
	stableGen      uint64
	subs           map[uint64]chan models.NetworkEvent
	nextSubID      uint64
	baseCtx        context.Context

	// emitMu keeps persisted and published events in transition order.
	emitMu sync.Mutex

	probeNow chan struct{}

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewMonitor creates an idle monitor. events may be nil, in which case
// transitions are not persisted.
func NewMonitor(cfg config.ClientNetwork, prober Prober, events store.NetworkEventRepository, log *logger.Logger) *Monitor {
	return &Monitor{
		cfg:    cfg,
		prober: prober,
		events: events,
		logger: log,
		now:    time.Now,
		state: models.NetworkState{
			Type:    models.ConnectionNone,
			Quality: models.QualityNone,
			Since:   time.Now(),
		},
		subs:     make(map[uint64]chan models.NetworkEvent),
		baseCtx:  log.WithContext(context.Background()),
		probeNow: make(chan struct{}, 1),
	}
}

// GetState returns a snapshot of the current network state.
func (m *Monitor) GetState() models.NetworkState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Start restores the last persisted disconnect and launches the probe loop.
// The loop probes while connected, or always in probe-only mode. Starting a
// running monitor is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.runMu.Lock()
	if m.cancel != nil {
		m.runMu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.runMu.Unlock()

	m.restore(ctx)

	m.mu.Lock()
	m.baseCtx = runCtx
	m.mu.Unlock()

	interval := m.cfg.ProbeInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		m.probeOnce(runCtx)
		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.C:
				m.probeOnce(runCtx)
			case <-m.probeNow:
				m.probeOnce(runCtx)
			}
		}
	}()
}

// Stop ends the probe loop, cancels a pending stable signal and closes all
// subscriptions. Safe to call when the monitor is not running.
func (m *Monitor) Stop() {
	m.runMu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()

	m.mu.Lock()
	m.cancelStableLocked()
	for id, ch := range m.subs {
		delete(m.subs, id)
		close(ch)
	}
	m.mu.Unlock()
}

func (m *Monitor) restore(ctx context.Context) {
	if m.events == nil {
		return
	}

	last, err := m.events.LastOf(ctx, models.EventDisconnected)
	if errors.Is(err, store.ErrNetworkEventNotFound) {
		return
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "Monitor.restore").
			Msg("failed to load last disconnect")
		return
	}

	m.mu.Lock()
	m.lastDisconnect = last.At
	if !m.state.Connected {
		m.state.Since = last.At
	}
	m.mu.Unlock()
}

// Subscribe registers a listener. Events are dropped for a subscriber whose
// buffer is full. The returned function unsubscribes and closes the channel.
func (m *Monitor) Subscribe(buffer int) (<-chan models.NetworkEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}

	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	ch := make(chan models.NetworkEvent, buffer)
	m.subs[id] = ch
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if c, ok := m.subs[id]; ok {
				delete(m.subs, id)
				close(c)
			}
		})
	}
}

// SetConnectivity applies a report from the platform connectivity
// collaborator. A fresh connection is unreachable until the next probe,
// which is requested immediately.
func (m *Monitor) SetConnectivity(ctx context.Context, connected bool, connType models.ConnectionType) {
	m.mu.Lock()
	prev := m.state
	next := prev
	next.Connected = connected
	if connected {
		if connType == "" || connType == models.ConnectionNone {
			connType = models.ConnectionUnknown
		}
		next.Type = connType
		if !prev.Connected {
			next.Reachable = false
			next.Quality = models.QualityNone
			next.Latency = 0
		}
	} else {
		next.Type = models.ConnectionNone
		next.Reachable = false
		next.Quality = models.QualityNone
		next.Latency = 0
	}
	events := m.transitionLocked(prev, next)
	m.mu.Unlock()

	m.publish(ctx, events)

	if connected && !prev.Connected {
		select {
		case m.probeNow <- struct{}{}:
		default:
		}
	}
}

// TestConnectivity probes url (the sync server health endpoint when empty)
// and folds the result into the state.
func (m *Monitor) TestConnectivity(ctx context.Context, url string) bool {
	probeCtx := ctx
	if m.cfg.ProbeTimeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, m.cfg.ProbeTimeout)
		defer cancel()
	}

	latency, err := m.prober.Probe(probeCtx, url)
	if ctx.Err() != nil {
		return false
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "Monitor.TestConnectivity").
			Str("url", url).
			Msg("probe failed")
	}

	m.applyProbe(ctx, latency, err)
	return err == nil
}

// WaitForConnection blocks until the device is connected, timeout elapses or
// ctx ends.
func (m *Monitor) WaitForConnection(ctx context.Context, timeout time.Duration) bool {
	if m.GetState().Connected {
		return true
	}

	ch, unsubscribe := m.Subscribe(8)
	defer unsubscribe()

	// a transition may have happened before the subscription
	if m.GetState().Connected {
		return true
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return false
		case e, ok := <-ch:
			if !ok {
				return false
			}
			if e.State.Connected {
				return true
			}
		}
	}
}

// OfflineDuration returns how long the device has been disconnected, or
// zero while connected or when no disconnect was ever recorded.
func (m *Monitor) OfflineDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state.Connected || m.lastDisconnect.IsZero() {
		return 0
	}
	return m.now().Sub(m.lastDisconnect)
}

// History returns persisted events, newest first.
func (m *Monitor) History(ctx context.Context, limit uint64) ([]models.NetworkEvent, error) {
	if m.events == nil {
		return nil, nil
	}
	return m.events.List(ctx, limit)
}

func (m *Monitor) probeOnce(ctx context.Context) {
	if !m.cfg.ProbeOnly && !m.GetState().Connected {
		return
	}
	m.TestConnectivity(ctx, "")
}

func (m *Monitor) applyProbe(ctx context.Context, latency time.Duration, probeErr error) {
	m.mu.Lock()
	prev := m.state
	if !m.cfg.ProbeOnly && !prev.Connected {
		m.mu.Unlock()
		return
	}

	next := prev
	if probeErr != nil {
		next.Reachable = false
		next.Quality = models.QualityNone
		next.Latency = 0
		if m.cfg.ProbeOnly {
			next.Connected = false
			next.Type = models.ConnectionNone
		}
	} else {
		if m.cfg.ProbeOnly {
			next.Connected = true
			if next.Type == models.ConnectionNone {
				next.Type = models.ConnectionUnknown
			}
		}
		next.Reachable = true
		next.Latency = latency
		next.Quality = QualityFor(next.Type, latency)
	}
	events := m.transitionLocked(prev, next)
	m.mu.Unlock()

	m.publish(ctx, events)
}

// transitionLocked installs next and returns the events it implies.
func (m *Monitor) transitionLocked(prev, next models.NetworkState) []models.NetworkEvent {
	now := m.now()
	if prev.Connected != next.Connected {
		next.Since = now
	}
	m.state = next

	changed := prev.Connected != next.Connected ||
		prev.Reachable != next.Reachable ||
		prev.Type != next.Type ||
		prev.Quality != next.Quality
	if !changed {
		return nil
	}

	event := func(t models.NetworkEventType) models.NetworkEvent {
		return models.NetworkEvent{Type: t, State: next, Previous: prev, At: now}
	}

	events := []models.NetworkEvent{event(models.EventStateChange)}
	switch {
	case !prev.Connected && next.Connected:
		events = append(events, event(models.EventReconnected))
		m.scheduleStableLocked()
	case prev.Connected && !next.Connected:
		events = append(events, event(models.EventDisconnected))
		m.lastDisconnect = now
		m.cancelStableLocked()
	case prev.Connected && next.Connected && prev.Type != next.Type:
		events = append(events, event(models.EventTypeChanged))
	}
	if prev.Quality != next.Quality {
		events = append(events, event(models.EventQualityChange))
	}

	return events
}

func (m *Monitor) scheduleStableLocked() {
	m.cancelStableLocked()
	gen := m.stableGen
	m.stableTimer = time.AfterFunc(m.cfg.StabilizationDelay, func() {
		m.fireStable(gen)
	})
}

func (m *Monitor) cancelStableLocked() {
	m.stableGen++
	if m.stableTimer != nil {
		m.stableTimer.Stop()
		m.stableTimer = nil
	}
}

func (m *Monitor) fireStable(gen uint64) {
	m.mu.Lock()
	if gen != m.stableGen || !m.state.Connected {
		m.mu.Unlock()
		return
	}
	m.stableTimer = nil
	state := m.state
	ctx := m.baseCtx
	m.mu.Unlock()

	m.publish(ctx, []models.NetworkEvent{{
		Type:     models.EventStableConnection,
		State:    state,
		Previous: state,
		At:       m.now(),
	}})
}

func (m *Monitor) publish(ctx context.Context, events []models.NetworkEvent) {
	if len(events) == 0 {
		return
	}

	m.emitMu.Lock()
	defer m.emitMu.Unlock()

	log := logger.FromContext(ctx)
	for _, e := range events {
		if m.events != nil {
			if err := m.events.Add(ctx, e); err != nil {
				log.Warn().Err(err).
					Str("func", "Monitor.publish").
					Str("event", string(e.Type)).
					Msg("failed to persist network event")
			}
		}

		log.Debug().
			Str("func", "Monitor.publish").
			Str("event", string(e.Type)).
			Bool("connected", e.State.Connected).
			Bool("reachable", e.State.Reachable).
			Str("quality", string(e.State.Quality)).
			Msg("network event")

		m.broadcast(e)
	}
}

func (m *Monitor) broadcast(e models.NetworkEvent) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ch := range m.subs {
		select {
		case ch <- e:
		default:
			m.logger.Warn().
				Str("func", "Monitor.broadcast").
				Str("event", string(e.Type)).
				Msg("subscriber buffer full, event dropped")
		}
	}
}
