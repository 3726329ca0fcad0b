package player

const eventBufferSize = 16

// Subscription provides event channels for a subscriber. Sends never block:
// events are dropped when a channel buffer is full.
type Subscription struct {
	StateChanged  <-chan StateChange
	SourceChanged <-chan SourceChange
	EOS           <-chan EOS
	Error         <-chan ErrorEvent
	Done          <-chan struct{}

	stateCh  chan StateChange
	sourceCh chan SourceChange
	eosCh    chan EOS
	errorCh  chan ErrorEvent
	doneCh   chan struct{}
}

func newSubscription(size int) *Subscription {
	if size <= 0 {
		size = eventBufferSize
	}
	s := &Subscription{
		stateCh:  make(chan StateChange, size),
		sourceCh: make(chan SourceChange, size),
		eosCh:    make(chan EOS, size),
		errorCh:  make(chan ErrorEvent, size),
		doneCh:   make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.SourceChanged = s.sourceCh
	s.EOS = s.eosCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) send(e any) {
	switch e := e.(type) {
	case StateChange:
		select {
		case s.stateCh <- e:
		default:
		}
	case SourceChange:
		select {
		case s.sourceCh <- e:
		default:
		}
	case EOS:
		select {
		case s.eosCh <- e:
		default:
		}
	case ErrorEvent:
		select {
		case s.errorCh <- e:
		default:
		}
	}
}
