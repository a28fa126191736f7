package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/internal/document"
	"github.com/mcdev12/clubhouse/go/internal/ledger"
	"github.com/mcdev12/clubhouse/go/internal/match"
	"github.com/mcdev12/clubhouse/go/internal/models"
	"github.com/mcdev12/clubhouse/go/internal/player"
	"github.com/mcdev12/clubhouse/go/internal/roster"
	"github.com/mcdev12/clubhouse/go/internal/staff"
	"github.com/mcdev12/clubhouse/go/internal/store"
)

// matchResponse serves a match with its derived home score alongside the
// stored away score.
type matchResponse struct {
	models.Match
	ScoreHome int `json:"score_home"`
}

func toMatchResponse(m models.Match) matchResponse {
	return matchResponse{Match: m, ScoreHome: m.HomeScore()}
}

func registerAPIRoutes(mux *http.ServeMux, s *Services) {
	// Players
	mux.HandleFunc("POST /api/players", func(w http.ResponseWriter, r *http.Request) {
		var req player.CreatePlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		p, err := s.Players.CreatePlayer(req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistPlayer(r.Context(), *p)
		respondJSON(w, http.StatusCreated, p)
	})

	mux.HandleFunc("GET /api/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		p, err := s.Players.GetPlayer(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	})

	mux.HandleFunc("PUT /api/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		var req player.UpdatePlayerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		p, err := s.Players.UpdatePlayer(id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistPlayer(r.Context(), *p)
		respondJSON(w, http.StatusOK, p)
	})

	mux.HandleFunc("DELETE /api/players/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Players.DeletePlayer(id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/players/{id}/stats", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		totals, err := s.Players.CareerStats(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, totals)
	})

	mux.HandleFunc("GET /api/players/{id}/bio", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		text, err := s.Players.Bio(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"text": text})
	})

	// Staff
	mux.HandleFunc("POST /api/staff", func(w http.ResponseWriter, r *http.Request) {
		var req staff.CreateStaffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		st, err := s.Staff.CreateStaff(req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistStaff(r.Context(), *st)
		respondJSON(w, http.StatusCreated, st)
	})

	mux.HandleFunc("GET /api/staff/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		st, err := s.Staff.GetStaff(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, st)
	})

	mux.HandleFunc("PUT /api/staff/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		var req staff.UpdateStaffRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		st, err := s.Staff.UpdateStaff(id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistStaff(r.Context(), *st)
		respondJSON(w, http.StatusOK, st)
	})

	mux.HandleFunc("DELETE /api/staff/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Staff.DeleteStaff(id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	// Matches
	mux.HandleFunc("POST /api/matches", func(w http.ResponseWriter, r *http.Request) {
		var req match.CreateMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		m, err := s.Matches.CreateMatch(req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistMatch(r.Context(), *m)
		respondJSON(w, http.StatusCreated, toMatchResponse(*m))
	})

	mux.HandleFunc("GET /api/matches/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		m, err := s.Matches.GetMatch(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, toMatchResponse(*m))
	})

	mux.HandleFunc("PUT /api/matches/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		var req match.UpdateMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		m, err := s.Matches.UpdateMatch(id, req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistMatch(r.Context(), *m)
		respondJSON(w, http.StatusOK, toMatchResponse(*m))
	})

	mux.HandleFunc("DELETE /api/matches/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Matches.DeleteMatch(id); err != nil {
			respondError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("POST /api/matches/{id}/events", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		var req match.RecordEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, err)
			return
		}
		req.MatchID = id
		m, err := s.Matches.RecordEvent(r.Context(), req)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistMatch(r.Context(), *m)
		respondJSON(w, http.StatusOK, toMatchResponse(*m))
	})

	mux.HandleFunc("DELETE /api/matches/{id}/events/{index}", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		index, err := strconv.Atoi(r.PathValue("index"))
		if err != nil {
			respondError(w, err)
			return
		}
		m, err := s.Matches.RemoveEvent(r.Context(), match.RemoveEventRequest{MatchID: id, Index: index})
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistMatch(r.Context(), *m)
		respondJSON(w, http.StatusOK, toMatchResponse(*m))
	})

	mux.HandleFunc("POST /api/matches/{id}/finalize", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		m, err := s.Matches.FinalizeMatch(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistMatch(r.Context(), *m)
		respondJSON(w, http.StatusOK, toMatchResponse(*m))
	})

	mux.HandleFunc("GET /api/matches/{id}/timeline", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		events, err := s.Matches.Timeline(id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, events)
	})

	mux.HandleFunc("GET /api/matches/{id}/preview", func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		text, err := s.Matches.Preview(r.Context(), id)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]string{"text": text})
	})

	// Partition view
	mux.HandleFunc("GET /api/partition", func(w http.ResponseWriter, r *http.Request) {
		department := models.Department(r.URL.Query().Get("department"))
		discipline := models.Discipline(r.URL.Query().Get("discipline"))
		view := roster.Partition(s.Store.Snapshot(), department, discipline)

		matches := make([]matchResponse, len(view.Matches))
		for i, m := range view.Matches {
			matches[i] = toMatchResponse(m)
		}
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"players": view.Players,
			"staff":   view.Staff,
			"matches": matches,
		})
	})

	// Documents
	registerDocumentRoutes(mux, s, "players", models.OwnerPlayer)
	registerDocumentRoutes(mux, s, "staff", models.OwnerStaff)

	// Club theme
	mux.HandleFunc("GET /api/theme", func(w http.ResponseWriter, r *http.Request) {
		if s.Persistence != nil {
			if theme, err := s.Persistence.ReadTheme(r.Context()); err == nil {
				respondJSON(w, http.StatusOK, theme)
				return
			}
		}
		// Fall back to the configured defaults
		theme := models.ClubTheme{
			ClubName:       s.Config.Club.Name,
			PrimaryColor:   s.Config.Club.Theme.PrimaryColor,
			SecondaryColor: s.Config.Club.Theme.SecondaryColor,
			CrestURL:       s.Config.Club.Theme.CrestURL,
		}
		respondJSON(w, http.StatusOK, theme)
	})

	mux.HandleFunc("PUT /api/theme", func(w http.ResponseWriter, r *http.Request) {
		var theme models.ClubTheme
		if err := json.NewDecoder(r.Body).Decode(&theme); err != nil {
			respondError(w, err)
			return
		}
		if s.Persistence != nil {
			if err := s.Persistence.UpsertTheme(r.Context(), theme); err != nil {
				log.Warn().Err(err).Msg("failed to persist club theme")
			}
		}
		respondJSON(w, http.StatusOK, theme)
	})
}

// documentResponse serves a document with its status resolved against the
// clock, so an expired document reads EXPIRED regardless of what is stored.
type documentResponse struct {
	models.TeamDocument
	EffectiveStatus models.DocumentStatus `json:"effective_status"`
}

func registerDocumentRoutes(mux *http.ServeMux, s *Services, prefix string, kind models.OwnerKind) {
	mux.HandleFunc("GET /api/"+prefix+"/{id}/documents", func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		docs, err := s.Documents.ListDocuments(ownerID, kind)
		if err != nil {
			respondError(w, err)
			return
		}
		out := make([]documentResponse, len(docs))
		for i, doc := range docs {
			out[i] = documentResponse{TeamDocument: doc, EffectiveStatus: s.Documents.EffectiveStatus(doc)}
		}
		respondJSON(w, http.StatusOK, out)
	})

	mux.HandleFunc("POST /api/"+prefix+"/{id}/documents", func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		var doc models.TeamDocument
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			respondError(w, err)
			return
		}
		created, err := s.Documents.AddDocument(ownerID, kind, doc)
		if err != nil {
			respondError(w, err)
			return
		}
		s.persistOwner(r.Context(), ownerID, kind)
		respondJSON(w, http.StatusCreated, created)
	})

	mux.HandleFunc("POST /api/"+prefix+"/{id}/documents/{docID}/validate", func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			respondError(w, err)
			return
		}
		docID, err := uuid.Parse(r.PathValue("docID"))
		if err != nil {
			respondError(w, err)
			return
		}
		if err := s.Documents.ValidateDocument(ownerID, kind, docID); err != nil {
			respondError(w, err)
			return
		}
		s.persistOwner(r.Context(), ownerID, kind)
		w.WriteHeader(http.StatusNoContent)
	})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrMatchFinished):
		status = http.StatusConflict
	case errors.Is(err, document.ErrUnknownOwnerKind):
		status = http.StatusBadRequest
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
