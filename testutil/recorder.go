package testutil

import (
	"sync"
	"time"

	"github.com/kbukum/scopekit/di"
)

// Event is one observation made by a Recorder.
type Event struct {
	Op        string // "resolve" or "construct"
	Container string
	Key       di.Key
	Scope     di.Scope
	Err       error
}

// Recorder is a di.Observer that keeps every event in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ di.Observer = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnResolve(container string, key di.Key, err error) {
	r.add(Event{Op: "resolve", Container: container, Key: key, Err: err})
}

func (r *Recorder) OnConstruct(container string, key di.Key, scope di.Scope, _ time.Duration, err error) {
	r.add(Event{Op: "construct", Container: container, Key: key, Scope: scope, Err: err})
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Constructions counts successful constructions of key.
func (r *Recorder) Constructions(key di.Key) int {
	n := 0
	for _, e := range r.Events() {
		if e.Op == "construct" && e.Key == key && e.Err == nil {
			n++
		}
	}
	return n
}

// Reset forgets every recorded event.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
