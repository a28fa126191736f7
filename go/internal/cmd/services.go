package main

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/clients/copy_client"
	"github.com/mcdev12/clubhouse/go/internal/document"
	"github.com/mcdev12/clubhouse/go/internal/match"
	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/outbox"
	"github.com/mcdev12/clubhouse/go/internal/persistence"
	"github.com/mcdev12/clubhouse/go/internal/player"
	"github.com/mcdev12/clubhouse/go/internal/staff"
	"github.com/mcdev12/clubhouse/go/internal/store"
)

type Services struct {
	Store       *store.Store
	Players     *player.App
	Staff       *staff.App
	Matches     *match.App
	Documents   *document.App
	Persistence *persistence.Repository
	Config      *Config
}

// setupServices wires the dependency chain: entity store → app layers, with
// the persistence repository and copywriter attached at the boundary. The
// database may be nil, in which case the club runs memory-only for the
// session.
func setupServices(database *sql.DB, js jetstream.JetStream, config *Config, clock clockwork.Clock) *Services {
	entityStore := store.New(clock)

	var publisher outbox.Publisher = outbox.NopPublisher{}
	if js != nil {
		publisher = outbox.NewJetStreamPublisher(js, config.NATS.SubjectPrefix)
	}

	var matchCopywriter match.Copywriter
	var playerCopywriter player.Copywriter
	if config.Copywriter.BaseURL != "" {
		client := copy_client.NewCopyClient(config.Copywriter.BaseURL, getEnv("COPYWRITER_API_KEY", ""))
		matchCopywriter = client
		playerCopywriter = client
	}

	var repo *persistence.Repository
	if database != nil {
		repo = persistence.NewRepository(database)
	}

	return &Services{
		Store:       entityStore,
		Players:     player.NewApp(entityStore, playerCopywriter),
		Staff:       staff.NewApp(entityStore),
		Matches:     match.NewApp(entityStore, publisher, matchCopywriter, clock),
		Documents:   document.NewApp(entityStore, clock),
		Persistence: repo,
		Config:      config,
	}
}

// hydrate loads the entity store from the persistence collaborator. A read
// failure leaves the corresponding collection empty; the session still runs.
func (s *Services) hydrate(ctx context.Context) {
	if s.Persistence == nil {
		return
	}

	var snap store.Snapshot

	players, err := s.Persistence.ReadAllPlayers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load players from persistence")
	} else {
		snap.Players = players
	}

	staffMembers, err := s.Persistence.ReadAllStaff(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load staff from persistence")
	} else {
		snap.Staff = staffMembers
	}

	matches, err := s.Persistence.ReadAllMatches(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not load matches from persistence")
	} else {
		snap.Matches = matches
	}

	s.Store.Load(snap)
	log.Info().
		Int("players", len(snap.Players)).
		Int("staff", len(snap.Staff)).
		Int("matches", len(snap.Matches)).
		Msg("store hydrated from persistence")
}

// Write-behind helpers. The local mutation has already been applied; a
// persistence failure is logged and the session keeps going. Callers that
// need durability must check the persistence log.

func (s *Services) persistPlayer(ctx context.Context, p models.Player) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.InsertPlayer(ctx, p); err != nil {
		log.Warn().Err(err).Str("player_id", p.ID.String()).Msg("failed to persist player")
	}
}

func (s *Services) persistStaff(ctx context.Context, st models.Staff) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.InsertStaff(ctx, st); err != nil {
		log.Warn().Err(err).Str("staff_id", st.ID.String()).Msg("failed to persist staff member")
	}
}

func (s *Services) persistOwner(ctx context.Context, ownerID uuid.UUID, kind models.OwnerKind) {
	if s.Persistence == nil {
		return
	}
	switch kind {
	case models.OwnerPlayer:
		if p, err := s.Store.GetPlayer(ownerID); err == nil {
			s.persistPlayer(ctx, *p)
		}
	case models.OwnerStaff:
		if st, err := s.Store.GetStaff(ownerID); err == nil {
			s.persistStaff(ctx, *st)
		}
	}
}

func (s *Services) persistMatch(ctx context.Context, m models.Match) {
	if s.Persistence == nil {
		return
	}
	if err := s.Persistence.InsertMatch(ctx, m); err != nil {
		log.Warn().Err(err).Str("match_id", m.ID.String()).Msg("failed to persist match")
	}
}
