package document

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// ErrUnknownOwnerKind is returned when the owner tag is neither player nor
// staff.
var ErrUnknownOwnerKind = errors.New("unknown owner kind")

// OwnerRepository defines what the app layer needs from the entity store
type OwnerRepository interface {
	GetPlayer(id uuid.UUID) (*models.Player, error)
	UpdatePlayer(p models.Player) error
	GetStaff(id uuid.UUID) (*models.Staff, error)
	UpdateStaff(st models.Staff) error
}

// App handles compliance document business logic
type App struct {
	repo  OwnerRepository
	clock clockwork.Clock
}

// NewApp creates a new document App
func NewApp(repo OwnerRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// AddDocument attaches a document to the owner's document list. The document
// identifier is assigned here.
func (a *App) AddDocument(ownerID uuid.UUID, kind models.OwnerKind, doc models.TeamDocument) (*models.TeamDocument, error) {
	doc.ID = uuid.New()
	if doc.Status == "" {
		doc.Status = models.DocumentPending
	}

	err := a.mutateOwnerDocuments(ownerID, kind, func(docs []models.TeamDocument) ([]models.TeamDocument, error) {
		return append(docs, doc), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add document: %w", err)
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("owner_kind", string(kind)).
		Str("document_type", doc.Type).
		Msg("document attached")
	return &doc, nil
}

// ValidateDocument sets the matching document's status to VALID. The
// transition is unconditional; it does not require the document to be
// awaiting validation first. An unknown document id leaves the owner's list
// untouched.
func (a *App) ValidateDocument(ownerID uuid.UUID, kind models.OwnerKind, documentID uuid.UUID) error {
	err := a.mutateOwnerDocuments(ownerID, kind, func(docs []models.TeamDocument) ([]models.TeamDocument, error) {
		next := make([]models.TeamDocument, len(docs))
		found := false
		for i, d := range docs {
			if d.ID == documentID {
				d.Status = models.DocumentValid
				found = true
			}
			next[i] = d
		}
		if !found {
			return nil, fmt.Errorf("document %s not found", documentID)
		}
		return next, nil
	})
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	log.Info().
		Str("owner_id", ownerID.String()).
		Str("document_id", documentID.String()).
		Msg("document validated")
	return nil
}

// ListDocuments returns the owner's document list as stored.
func (a *App) ListDocuments(ownerID uuid.UUID, kind models.OwnerKind) ([]models.TeamDocument, error) {
	switch kind {
	case models.OwnerPlayer:
		p, err := a.repo.GetPlayer(ownerID)
		if err != nil {
			return nil, fmt.Errorf("owner not found: %w", err)
		}
		return p.Documents, nil

	case models.OwnerStaff:
		st, err := a.repo.GetStaff(ownerID)
		if err != nil {
			return nil, fmt.Errorf("owner not found: %w", err)
		}
		return st.Documents, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOwnerKind, kind)
	}
}

// EffectiveStatus evaluates expiry at read time: a document past its expiry
// date reads as EXPIRED regardless of the stored status. Expiry is never
// written back as a transition.
func (a *App) EffectiveStatus(doc models.TeamDocument) models.DocumentStatus {
	if doc.ExpiresAt != nil && doc.ExpiresAt.Before(a.clock.Now()) {
		return models.DocumentExpired
	}
	return doc.Status
}

// mutateOwnerDocuments loads the owner of the given kind, applies fn to its
// document list, and writes the owner back through the store's update
// operation. The owner write is a whole-entity replace, so the list swap is
// atomic with respect to readers.
func (a *App) mutateOwnerDocuments(ownerID uuid.UUID, kind models.OwnerKind, fn func([]models.TeamDocument) ([]models.TeamDocument, error)) error {
	switch kind {
	case models.OwnerPlayer:
		p, err := a.repo.GetPlayer(ownerID)
		if err != nil {
			return fmt.Errorf("owner not found: %w", err)
		}
		docs, err := fn(p.Documents)
		if err != nil {
			return err
		}
		p.Documents = docs
		return a.repo.UpdatePlayer(*p)

	case models.OwnerStaff:
		st, err := a.repo.GetStaff(ownerID)
		if err != nil {
			return fmt.Errorf("owner not found: %w", err)
		}
		docs, err := fn(st.Documents)
		if err != nil {
			return err
		}
		st.Documents = docs
		return a.repo.UpdateStaff(*st)

	default:
		return fmt.Errorf("%w: %s", ErrUnknownOwnerKind, kind)
	}
}
