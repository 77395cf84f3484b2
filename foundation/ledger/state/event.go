package state

import "time"

// Event is the structured record emitted for every committed operation.
// Emission is fire and forget: a journal write failure is logged but never
// fails the operation that produced the event.
type Event struct {
	Seq    uint64         `json:"seq"`
	Time   time.Time      `json:"time"`
	Name   string         `json:"name"`
	Fields map[string]any `json:"fields"`
}

// emit journals and fans out the record of a committed operation. The caller
// must hold the state mutex so sequence numbers are assigned in commit order.
func (s *State) emit(now time.Time, name string, fields map[string]any) {
	s.eventSeq++
	evt := Event{
		Seq:    s.eventSeq,
		Time:   now,
		Name:   name,
		Fields: fields,
	}

	if err := s.storage.AppendEvent(evt); err != nil {
		s.evHandler("state: emit: %s: journal write failed: ERROR: %s", name, err)
	}

	if s.sink != nil {
		s.sink(evt)
	}
}
