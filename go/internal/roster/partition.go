// Package roster projects the full club state down to the working subset for
// the active department and discipline selectors.
package roster

import (
	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/store"
)

// View is the filtered working subset the rest of the system operates on.
type View struct {
	Players []models.Player
	Staff   []models.Staff
	Matches []models.Match
}

// Partition filters a snapshot by the two active selectors. People belong to
// a department only; matches require both department and discipline. The
// projection is pure and must be recomputed on every read, since the
// selectors change independently of entity mutation.
func Partition(snap store.Snapshot, department models.Department, discipline models.Discipline) View {
	view := View{
		Players: make([]models.Player, 0, len(snap.Players)),
		Staff:   make([]models.Staff, 0, len(snap.Staff)),
		Matches: make([]models.Match, 0, len(snap.Matches)),
	}

	for _, p := range snap.Players {
		if p.Department == department {
			view.Players = append(view.Players, p)
		}
	}
	for _, st := range snap.Staff {
		if st.Department == department {
			view.Staff = append(view.Staff, st)
		}
	}
	for _, m := range snap.Matches {
		if m.Department == department && m.Discipline == discipline {
			view.Matches = append(view.Matches, m)
		}
	}

	return view
}
