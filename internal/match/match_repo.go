package match

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/internal/application"
	"github.com/keita-f/scrimmage/internal/game"
	"github.com/keita-f/scrimmage/pkg/apperrors"
)

// MatchRepository owns the application/game/match state machine: approving
// an application is the only way a match comes into existence, and
// cancelling the match is the only way the triple reverts. Both run as a
// single transaction whose closure returns typed errors to trigger rollback.
type MatchRepository interface {
	GetByUser(userID uint) ([]Match, error)
	GetHostedBy(userID uint) ([]Match, error)
	GetGuestOf(userID uint) ([]Match, error)
	GetUpcoming(userID uint, today string) ([]Match, error)
	GetPast(userID uint, today string) ([]Match, error)
	GetByID(id uint) (*Match, error)
	ApproveApplication(applicationID, actorID uint) (*Match, error)
	RejectApplication(applicationID, actorID uint) (*application.Application, error)
	Cancel(matchID, userID uint) error
}

type gormMatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &gormMatchRepository{db: db}
}

func (r *gormMatchRepository) GetByUser(userID uint) ([]Match, error) {
	var matches []Match
	err := r.db.Where("host_id = ? OR guest_id = ?", userID, userID).
		Order("date ASC, time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

func (r *gormMatchRepository) GetHostedBy(userID uint) ([]Match, error) {
	var matches []Match
	err := r.db.Where("host_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list hosted matches: %w", err)
	}
	return matches, nil
}

func (r *gormMatchRepository) GetGuestOf(userID uint) ([]Match, error) {
	var matches []Match
	err := r.db.Where("guest_id = ?", userID).
		Order("date ASC, time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list guest matches: %w", err)
	}
	return matches, nil
}

func (r *gormMatchRepository) GetUpcoming(userID uint, today string) ([]Match, error) {
	var matches []Match
	err := r.db.Where("(host_id = ? OR guest_id = ?) AND date >= ?", userID, userID, today).
		Order("date ASC, time ASC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	return matches, nil
}

func (r *gormMatchRepository) GetPast(userID uint, today string) ([]Match, error) {
	var matches []Match
	err := r.db.Where("(host_id = ? OR guest_id = ?) AND date < ?", userID, userID, today).
		Order("date DESC, time DESC").
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list past matches: %w", err)
	}
	return matches, nil
}

func (r *gormMatchRepository) GetByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get match: %w", err)
	}
	return &m, nil
}

// ApproveApplication runs the match-creation transaction. Preconditions are
// checked on the live rows first; the transaction then re-verifies that no
// match exists for the game, closing the check-then-act gap against a
// concurrent approval. The unique index on matches.game_id is the final
// authority: if two transactions slip past the re-check, one insert fails
// and that approval rolls back with a conflict.
func (r *gormMatchRepository) ApproveApplication(applicationID, actorID uint) (*Match, error) {
	var app application.Application
	if err := r.db.First(&app, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("approve: load application: %w", err)
	}
	if app.Status != application.StatusPending {
		return nil, apperrors.ErrConflict
	}

	var g game.Game
	if err := r.db.First(&g, app.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("approve: load game: %w", err)
	}
	if g.OwnerID != actorID {
		return nil, apperrors.ErrForbidden
	}
	if g.Status != game.StatusOpen {
		return nil, apperrors.ErrConflict
	}

	m := &Match{
		GameID:        g.ID,
		ApplicationID: app.ID,
		HostTeamName:  g.TeamName,
		GuestTeamName: app.ApplicantTeamName,
		HostContact:   g.Contact,
		GuestContact:  app.ApplicantContact,
		HostID:        g.OwnerID,
		GuestID:       app.ApplicantID,
		Sport:         g.Sport,
		Date:          g.Date,
		Time:          g.Time,
		Location:      g.Location,
		Description:   g.Description,
		MatchedAt:     time.Now(),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Match{}).Where("game_id = ?", g.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.ErrConflict
		}

		if err := tx.Create(m).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrConflict
			}
			return err
		}
		if err := tx.Model(&game.Game{}).Where("id = ?", g.ID).
			Update("status", game.StatusMatched).Error; err != nil {
			return err
		}
		if err := tx.Model(&application.Application{}).Where("id = ?", app.ID).
			Update("status", application.StatusApproved).Error; err != nil {
			return err
		}
		if err := tx.Model(&application.Application{}).
			Where("game_id = ? AND id <> ?", g.ID, app.ID).
			Update("status", application.StatusRejected).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return nil, apperrors.ErrConflict
		}
		return nil, fmt.Errorf("approve: transaction failed: %w", err)
	}
	return m, nil
}

// RejectApplication flips a pending application to rejected. Owner decision
// only; no other entity is touched.
func (r *gormMatchRepository) RejectApplication(applicationID, actorID uint) (*application.Application, error) {
	var app application.Application
	if err := r.db.First(&app, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("reject: load application: %w", err)
	}
	if app.Status != application.StatusPending {
		return nil, apperrors.ErrConflict
	}

	var g game.Game
	if err := r.db.First(&g, app.GameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("reject: load game: %w", err)
	}
	if g.OwnerID != actorID {
		return nil, apperrors.ErrForbidden
	}

	if err := r.db.Model(&app).Update("status", application.StatusRejected).Error; err != nil {
		return nil, fmt.Errorf("reject: update failed: %w", err)
	}
	return &app, nil
}

// Cancel runs the match-cancellation transaction: the participant-scoped
// lookup doubles as the authorization check, the match row is deleted, the
// game reopens and every application for it returns to pending.
func (r *gormMatchRepository) Cancel(matchID, userID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var m Match
		err := tx.Where("id = ? AND (host_id = ? OR guest_id = ?)", matchID, userID, userID).
			First(&m).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				var exists int64
				if cerr := tx.Model(&Match{}).Where("id = ?", matchID).Count(&exists).Error; cerr != nil {
					return cerr
				}
				if exists > 0 {
					return apperrors.ErrForbidden
				}
				return apperrors.ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&Match{}, m.ID).Error; err != nil {
			return err
		}
		if err := tx.Model(&game.Game{}).Where("id = ?", m.GameID).
			Update("status", game.StatusOpen).Error; err != nil {
			return err
		}
		if err := tx.Model(&application.Application{}).Where("id = ?", m.ApplicationID).
			Update("status", application.StatusPending).Error; err != nil {
			return err
		}
		if err := tx.Model(&application.Application{}).
			Where("game_id = ? AND status = ?", m.GameID, application.StatusRejected).
			Update("status", application.StatusPending).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if apperrors.IsDomain(err) {
			return err
		}
		return fmt.Errorf("cancel: transaction failed: %w", err)
	}
	return nil
}
