package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/clubhouse/go/internal/dbconfig"
	"github.com/mcdev12/clubhouse/go/internal/models"
)

type seedFile struct {
	Players []models.Player `json:"players"`
	Staff   []models.Staff  `json:"staff"`
	Matches []models.Match  `json:"matches"`
}

func main() {
	// 1) Load the JSON snapshot
	path := "go/internal/assets/club_seed.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read JSON: %v\n", err)
		os.Exit(1)
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	var inserted, errs int

	for _, p := range seed.Players {
		documents, _ := json.Marshal(p.Documents)
		achievements, _ := json.Marshal(p.Achievements)
		cachedStats, _ := json.Marshal(p.Stats)
		_, err := pool.Exec(ctx, `
            INSERT INTO players (
              id, name, jersey_number, position, birth_date, department,
              documents, achievements, stats, created_at
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
            ON CONFLICT (id) DO NOTHING`,
			p.ID, p.Name, p.JerseyNumber, p.Position, p.BirthDate, p.Department,
			documents, achievements, cachedStats, p.CreatedAt,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert player %s: %v\n", p.ID, err)
			errs++
			continue
		}
		inserted++
	}

	for _, st := range seed.Staff {
		documents, _ := json.Marshal(st.Documents)
		_, err := pool.Exec(ctx, `
            INSERT INTO staff (id, name, role, department, documents, created_at)
            VALUES ($1,$2,$3,$4,$5,$6)
            ON CONFLICT (id) DO NOTHING`,
			st.ID, st.Name, st.Role, st.Department, documents, st.CreatedAt,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert staff %s: %v\n", st.ID, err)
			errs++
			continue
		}
		inserted++
	}

	for _, m := range seed.Matches {
		events, _ := json.Marshal(m.Events)
		_, err := pool.Exec(ctx, `
            INSERT INTO matches (
              id, opponent, kickoff_at, venue, competition, department,
              discipline, events, score_away, finished, finished_at
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
            ON CONFLICT (id) DO NOTHING`,
			m.ID, m.Opponent, m.KickoffAt, m.Venue, m.Competition, m.Department,
			m.Discipline, events, m.ScoreAway, m.Finished, m.FinishedAt,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert match %s: %v\n", m.ID, err)
			errs++
			continue
		}
		inserted++
	}

	fmt.Printf("seed complete: %d inserted, %d errors\n", inserted, errs)
}
