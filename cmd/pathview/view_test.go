package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPumpEventsStopsOnQuit(t *testing.T) {
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone)
	}
	out := make(chan tcell.Event, 3)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pumpEvents(poll, out, quit)
		close(done)
	}()

	// nobody drains out once it is full
	deadline := time.Now().Add(5 * time.Second)
	for len(out) < cap(out) {
		if time.Now().After(deadline) {
			t.Fatal("events were not forwarded")
		}
		time.Sleep(time.Millisecond)
	}
	close(quit)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pump is still blocked after quit")
	}
}

func TestPumpEventsStopsOnNil(t *testing.T) {
	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
	}
	poll := func() tcell.Event {
		if len(events) == 0 {
			return nil
		}
		ev := events[0]
		events = events[1:]
		return ev
	}
	out := make(chan tcell.Event, 4)
	pumpEvents(poll, out, make(chan struct{}))
	if len(out) != 2 {
		t.Errorf("forwarded %d events, want 2", len(out))
	}
}
