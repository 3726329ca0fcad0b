// Package player sequences sources through a single output sink.
//
// A Player owns a FIFO queue of sources. The sink pulls frames from the
// Player on its own goroutine; the control methods (Queue, Play, Pause,
// Next, Delete) may be called from any goroutine and take effect at the
// next pull. Notifications are delivered on a goroutine owned by the
// Player, never on the audio goroutine.
package player

import (
	"errors"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/llehouerou/wavecue/internal/output"
	"github.com/llehouerou/wavecue/internal/source"
)

// ErrDeleted is returned by every operation on a deleted player.
var ErrDeleted = errors.New("player deleted")

var errNilSource = errors.New("nil source")

const defaultResampleQuality = 4

// Option configures a Player.
type Option func(*Player)

// WithVolume sets the initial volume level (0.0 to 1.0).
func WithVolume(level float64) Option {
	return func(p *Player) { p.setVolumeLocked(level) }
}

// WithResampleQuality sets the quality used when a source's sample rate
// differs from the sink's (1 to 64).
func WithResampleQuality(q int) Option {
	return func(p *Player) {
		if q >= 1 && q <= 64 {
			p.resampleQuality = q
		}
	}
}

// WithEventBuffer sets the buffer size of event channels.
func WithEventBuffer(n int) Option {
	return func(p *Player) {
		if n > 0 {
			p.eventBuffer = n
		}
	}
}

// Player plays queued sources back to back.
type Player struct {
	mu sync.Mutex

	sink     output.Sink
	state    State
	attached bool
	queue    queueStreamer
	volume   *effects.Volume

	volumeLevel     float64
	muted           bool
	resampleQuality int
	eventBuffer     int

	events chan any
	done   chan struct{}

	cbMu    sync.Mutex
	onEOS   func()
	onError func(error)
	subs    []*Subscription
}

var _ beep.Streamer = (*Player)(nil)

// New creates an Idle player with an empty queue. The player attaches
// itself to sink on the first Play.
func New(sink output.Sink, opts ...Option) *Player {
	p := &Player{
		sink:            sink,
		state:           Idle,
		volumeLevel:     1,
		resampleQuality: defaultResampleQuality,
		eventBuffer:     eventBufferSize,
		done:            make(chan struct{}),
	}
	p.volume = &effects.Volume{Streamer: &p.queue, Base: 2}
	p.queue.onAdvance = p.handleAdvance
	for _, opt := range opts {
		opt(p)
	}
	// Several events can be produced in one pull (advance, drain, state).
	p.events = make(chan any, p.eventBuffer*4)
	go p.dispatch()
	return p
}

// Queue appends src to the queue. It never changes the playback state, but
// an armed player (Playing with nothing queued) starts on it right away.
//
// A static source is queued as a duplicate that shares its buffer, so the
// same static sound can be queued any number of times.
func (p *Player) Queue(src source.Source) error {
	if src == nil {
		return errNilSource
	}
	if st, ok := src.(*source.Static); ok {
		if st == nil {
			return errNilSource
		}
		src = st.Dup()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Deleted {
		return ErrDeleted
	}

	p.queue.push(p.newEntry(src))
	if p.queue.len() == 1 {
		p.emit(SourceChange{Current: src})
	}
	return nil
}

// Play starts or resumes playback. With an empty queue the player is armed:
// the next queued source starts immediately. Play while Playing is a no-op.
func (p *Player) Play() error {
	p.mu.Lock()
	if p.state == Deleted {
		p.mu.Unlock()
		return ErrDeleted
	}
	if !p.state.CanPlay() {
		p.mu.Unlock()
		return nil
	}
	attach := !p.attached
	p.attached = true
	p.setStateLocked(Playing)
	p.mu.Unlock()

	// The sink may hold its own lock while pulling from us, so attach
	// without holding p.mu.
	if attach {
		if err := p.sink.Attach(p); err != nil {
			p.halt(err)
		}
	}
	return nil
}

// Pause halts output and keeps the cursor where it is. Pause while Idle or
// Paused is a no-op. Once Pause returns, no further frame of the current
// source is produced until Play.
func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Deleted {
		return ErrDeleted
	}
	if p.state.CanPause() {
		p.setStateLocked(Paused)
	}
	return nil
}

// Next drops the head of the queue. If that empties the queue while
// playback is active, the player goes Idle and EOS fires.
func (p *Player) Next() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Deleted {
		return ErrDeleted
	}
	if p.queue.len() == 0 {
		return nil
	}
	p.handleAdvance(p.queue.pop())
	if p.queue.len() == 0 && p.state.IsActive() {
		p.setStateLocked(Idle)
		p.emit(EOS{})
	}
	return nil
}

// Delete stops output, releases every queued source and detaches the player
// from its sink. No frame is produced once Delete returns. Any later call
// fails with ErrDeleted.
func (p *Player) Delete() error {
	p.mu.Lock()
	if p.state == Deleted {
		p.mu.Unlock()
		return ErrDeleted
	}
	entries := p.queue.clear()
	p.setStateLocked(Deleted)
	p.mu.Unlock()

	closeEntries(entries)
	close(p.done)

	p.cbMu.Lock()
	for _, sub := range p.subs {
		sub.close()
	}
	p.subs = nil
	p.cbMu.Unlock()
	return nil
}

// State returns the current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Armed reports whether a queued source would start playing immediately.
func (p *Player) Armed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == Playing && p.queue.len() == 0
}

// Len returns the number of queued sources, the playing one included.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.len()
}

// Source returns the head of the queue, or nil.
func (p *Player) Source() source.Source {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h := p.queue.head(); h != nil {
		return h.src
	}
	return nil
}

// Cursor returns the position of the head source, in its own frames.
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if h := p.queue.head(); h != nil {
		return h.src.Position()
	}
	return 0
}

// Position returns the playback position within the head source.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	h := p.queue.head()
	if h == nil {
		return 0
	}
	return h.src.Format().SampleRate.D(h.src.Position())
}

// OnEOS registers fn to be called each time the queue drains during
// playback. fn runs on the player's event goroutine.
func (p *Player) OnEOS(fn func()) error {
	p.cbMu.Lock()
	defer p.cbMu.Unlock()
	if p.isDone() {
		return ErrDeleted
	}
	p.onEOS = fn
	return nil
}

// OnError registers fn to be called for errors on the audio path.
// fn runs on the player's event goroutine.
func (p *Player) OnError(fn func(error)) error {
	p.cbMu.Lock()
	defer p.cbMu.Unlock()
	if p.isDone() {
		return ErrDeleted
	}
	p.onError = fn
	return nil
}

// Subscribe creates a new event subscription. On a deleted player the
// subscription is returned already done.
func (p *Player) Subscribe() *Subscription {
	sub := newSubscription(p.eventBuffer)
	p.cbMu.Lock()
	defer p.cbMu.Unlock()
	if p.isDone() {
		sub.close()
	} else {
		p.subs = append(p.subs, sub)
	}
	return sub
}

func (p *Player) isDone() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Done is closed when the player is deleted.
func (p *Player) Done() <-chan struct{} { return p.done }

// Stream implements beep.Streamer; it is called by the sink. The buffer is
// always filled, with silence when nothing is playing, until the player is
// deleted: then it returns (0, false) and the sink drops it.
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state == Deleted {
		return 0, false
	}

	if p.state == Playing && p.queue.len() > 0 {
		n, _ = p.volume.Stream(samples)
		if p.queue.len() == 0 {
			p.setStateLocked(Idle)
			p.emit(EOS{})
		}
	}
	clear(samples[n:])
	return len(samples), true
}

// Err implements beep.Streamer.
func (p *Player) Err() error { return nil }

func (p *Player) newEntry(src source.Source) entry {
	var s beep.Streamer = src
	if from, to := src.Format().SampleRate, p.sink.Format().SampleRate; from != to && from > 0 && to > 0 {
		s = beep.Resample(p.resampleQuality, from, to, src)
	}
	return entry{src: src, stream: s}
}

// handleAdvance runs with p.mu held, after ended left the queue.
func (p *Player) handleAdvance(ended entry) {
	if err := ended.src.Err(); err != nil {
		p.emit(ErrorEvent{Operation: OpStream, Err: err})
	}
	_ = ended.src.Close()

	var next source.Source
	if h := p.queue.head(); h != nil {
		next = h.src
	}
	p.emit(SourceChange{Previous: ended.src, Current: next})
}

// halt stops a player whose sink refused it, reporting err once.
func (p *Player) halt(err error) {
	p.mu.Lock()
	if p.state == Deleted {
		p.mu.Unlock()
		return
	}
	entries := p.queue.clear()
	p.attached = false
	p.setStateLocked(Idle)
	p.emit(ErrorEvent{Operation: OpAttach, Err: err})
	p.mu.Unlock()

	closeEntries(entries)
}

func (p *Player) setStateLocked(s State) {
	if p.state == s {
		return
	}
	prev := p.state
	p.state = s
	p.emit(StateChange{Previous: prev, Current: s})
}

// emit queues an event for the dispatcher without blocking.
func (p *Player) emit(e any) {
	select {
	case p.events <- e:
	default:
	}
}

// dispatch delivers events to callbacks and subscribers until Delete.
func (p *Player) dispatch() {
	for {
		select {
		case e := <-p.events:
			p.deliver(e)
		case <-p.done:
			return
		}
	}
}

func (p *Player) deliver(e any) {
	p.cbMu.Lock()
	onEOS, onError := p.onEOS, p.onError
	subs := append([]*Subscription(nil), p.subs...)
	p.cbMu.Unlock()

	switch e := e.(type) {
	case EOS:
		if onEOS != nil {
			onEOS()
		}
	case ErrorEvent:
		if onError != nil {
			onError(e)
		}
	}
	for _, sub := range subs {
		sub.send(e)
	}
}

func closeEntries(entries []entry) {
	for _, e := range entries {
		_ = e.src.Close()
	}
}
