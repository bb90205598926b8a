package application

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/pkg/apperrors"
)

const gameSummarySelect = "applications.*, games.team_name AS game_team_name, games.sport AS game_sport, " +
	"games.date AS game_date, games.time AS game_time, games.location AS game_location"

// ApplicationRepository defines persistence for applications. Status
// transitions out of pending happen only inside the match transactions, never
// through this interface.
type ApplicationRepository interface {
	Create(a *Application) error
	GetByID(id uint) (*Application, error)
	GetByGame(gameID uint) ([]Application, error)
	GetSentByUser(userID uint) ([]ApplicationWithGame, error)
	GetReceivedByOwner(ownerID uint) ([]ApplicationWithGame, error)
	Exists(gameID, applicantID uint) (bool, error)
	Delete(id uint, applicantID uint) error
}

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(a *Application) error {
	if err := r.db.Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (r *gormApplicationRepository) GetByID(id uint) (*Application, error) {
	var a Application
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

func (r *gormApplicationRepository) GetByGame(gameID uint) ([]Application, error) {
	var apps []Application
	err := r.db.Where("game_id = ?", gameID).
		Order("applied_at ASC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("list applications by game: %w", err)
	}
	return apps, nil
}

// GetSentByUser lists the applications a user has submitted, joined with a
// summary of each target game.
func (r *gormApplicationRepository) GetSentByUser(userID uint) ([]ApplicationWithGame, error) {
	var rows []ApplicationWithGame
	err := r.db.Model(&Application{}).
		Select(gameSummarySelect).
		Joins("JOIN games ON games.id = applications.game_id AND games.deleted_at IS NULL").
		Where("applications.applicant_id = ?", userID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list sent applications: %w", err)
	}
	return rows, nil
}

// GetReceivedByOwner lists the applications targeting games the user owns.
func (r *gormApplicationRepository) GetReceivedByOwner(ownerID uint) ([]ApplicationWithGame, error) {
	var rows []ApplicationWithGame
	err := r.db.Model(&Application{}).
		Select(gameSummarySelect).
		Joins("JOIN games ON games.id = applications.game_id AND games.deleted_at IS NULL").
		Where("games.owner_id = ?", ownerID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list received applications: %w", err)
	}
	return rows, nil
}

func (r *gormApplicationRepository) Exists(gameID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.Model(&Application{}).
		Where("game_id = ? AND applicant_id = ?", gameID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check existing application: %w", err)
	}
	return count > 0, nil
}

// Delete withdraws a pending application. The status guard is part of the
// statement so a concurrent approval cannot race the withdrawal.
func (r *gormApplicationRepository) Delete(id uint, applicantID uint) error {
	res := r.db.Where("id = ? AND applicant_id = ? AND status = ?", id, applicantID, StatusPending).
		Delete(&Application{})
	if res.Error != nil {
		return fmt.Errorf("delete application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
