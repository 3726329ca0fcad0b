package player

import (
	"errors"
	"testing"
	"testing/synctest"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription(0)

		sub.send(StateChange{Previous: Idle, Current: Playing})
		sub.send(SourceChange{})
		sub.send(EOS{})
		sub.send(ErrorEvent{Operation: "attach", Err: errors.New("no device")})

		e := <-sub.StateChanged
		if e.Current != Playing {
			t.Errorf("StateChanged.Current = %v, want Playing", e.Current)
		}

		sc := <-sub.SourceChanged
		if sc.Current != nil {
			t.Errorf("SourceChanged.Current = %v, want nil", sc.Current)
		}

		<-sub.EOS

		ev := <-sub.Error
		if ev.Error() != "attach: no device" {
			t.Errorf("Error = %q, want %q", ev.Error(), "attach: no device")
		}
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription(0)
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription(4)

	for range 4 + 5 {
		sub.send(EOS{})
	}

	count := 0
	for {
		select {
		case <-sub.EOS:
			count++
		default:
			goto done
		}
	}
done:
	if count != 4 {
		t.Errorf("received %d events, want %d (buffer size)", count, 4)
	}
}

func TestSubscription_IgnoresUnknownEvents(t *testing.T) {
	sub := newSubscription(0)
	sub.send("not an event")
	if len(sub.StateChanged)+len(sub.SourceChanged)+len(sub.EOS)+len(sub.Error) != 0 {
		t.Error("unknown event was delivered")
	}
}
