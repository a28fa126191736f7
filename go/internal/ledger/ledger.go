// Package ledger enforces the per-match event state machine: an OPEN match
// accepts event appends and removals, FINISHED is terminal and freezes the
// log. The home score is never stored alongside the log; Match.HomeScore
// derives it from the GOAL count, so a log write can never leave the score
// half-applied.
package ledger

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

var (
	// ErrMatchFinished is returned for any log mutation after finalization.
	ErrMatchFinished = errors.New("match is finished")
	// ErrEventIndex is returned when a removal index does not reference an
	// existing event.
	ErrEventIndex = errors.New("event index out of range")
)

// Append records an event at the end of the match's log. Valid only while
// the match is open.
func Append(m *models.Match, ev models.MatchEvent) error {
	if m.Finished {
		return ErrMatchFinished
	}
	m.Events = append(m.Events, ev)
	return nil
}

// Remove deletes the event at index, preserving the insertion order of the
// remaining entries. Valid only while the match is open.
func Remove(m *models.Match, index int) (models.MatchEvent, error) {
	if m.Finished {
		return models.MatchEvent{}, ErrMatchFinished
	}
	if index < 0 || index >= len(m.Events) {
		return models.MatchEvent{}, fmt.Errorf("%w: %d", ErrEventIndex, index)
	}

	removed := m.Events[index]
	next := make([]models.MatchEvent, 0, len(m.Events)-1)
	next = append(next, m.Events[:index]...)
	next = append(next, m.Events[index+1:]...)
	m.Events = next

	return removed, nil
}

// Finalize marks the match finished. The transition is irreversible; there
// is no reopen. Finalizing an already finished match is rejected so callers
// can tell the transition did not happen here.
func Finalize(m *models.Match) error {
	if m.Finished {
		return ErrMatchFinished
	}
	m.Finished = true
	return nil
}

// DisplayOrder returns a copy of the event log sorted by minute ascending.
// The stored log keeps insertion order; sorting in place would break
// removal-by-index.
func DisplayOrder(m models.Match) []models.MatchEvent {
	out := append([]models.MatchEvent(nil), m.Events...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Minute < out[j].Minute
	})
	return out
}
