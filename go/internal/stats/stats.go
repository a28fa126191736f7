// Package stats derives per-player career totals by folding over the event
// ledgers of all matches. The fold is a set-fold: idempotent and independent
// of match or event iteration order.
package stats

import (
	"github.com/google/uuid"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// Career computes a player's totals across the given matches. Goals and
// assists count matching events; matches counts the distinct matches in
// which the player appears in at least one event. Event participation stands
// in for lineup membership since no per-match lineup is modeled.
func Career(playerID uuid.UUID, matches []models.Match) models.PlayerStats {
	var totals models.PlayerStats
	seen := make(map[uuid.UUID]bool)

	for _, m := range matches {
		for _, ev := range m.Events {
			if ev.PlayerID != playerID {
				continue
			}
			switch ev.Type {
			case models.EventGoal:
				totals.Goals++
			case models.EventAssist:
				totals.Assists++
			}
			if !seen[m.ID] {
				seen[m.ID] = true
				totals.Matches++
			}
		}
	}

	return totals
}

// SyncPlayer refreshes the player's cached stats record from the event data.
func SyncPlayer(p *models.Player, matches []models.Match) {
	p.Stats = Career(p.ID, matches)
}
