package analytics

import (
	"sync"

	"dineWise/domain"
)

// EventLog is the in-memory telemetry sink. Events are lost on restart.
type EventLog struct {
	mu     sync.Mutex
	events []domain.EventRecord
}

func NewEventLog() *EventLog {
	return &EventLog{}
}

func (l *EventLog) Record(event domain.EventRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *EventLog) Events() []domain.EventRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.EventRecord, len(l.events))
	copy(out, l.events)
	return out
}

func (l *EventLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = nil
}
