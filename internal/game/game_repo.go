package game

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/keita-f/scrimmage/pkg/apperrors"
)

// GameRepository defines persistence for game slots.
type GameRepository interface {
	Create(g *Game) error
	GetByID(id uint) (*Game, error)
	GetAllOpen() ([]Game, error)
	GetBySport(sport string) ([]Game, error)
	GetByOwner(ownerID uint) ([]Game, error)
	Search(keyword string) ([]Game, error)
	UpdateStatus(id uint, status GameStatus, ownerID uint) error
	Delete(id uint, ownerID uint) error
}

type gormGameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &gormGameRepository{db: db}
}

func (r *gormGameRepository) Create(g *Game) error {
	if err := r.db.Create(g).Error; err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	return nil
}

func (r *gormGameRepository) GetByID(id uint) (*Game, error) {
	var g Game
	if err := r.db.First(&g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get game: %w", err)
	}
	return &g, nil
}

func (r *gormGameRepository) GetAllOpen() ([]Game, error) {
	var games []Game
	err := r.db.Where("status = ?", StatusOpen).
		Order("date ASC, time ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list open games: %w", err)
	}
	return games, nil
}

func (r *gormGameRepository) GetBySport(sport string) ([]Game, error) {
	var games []Game
	err := r.db.Where("status = ? AND sport = ?", StatusOpen, sport).
		Order("date ASC, time ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games by sport: %w", err)
	}
	return games, nil
}

func (r *gormGameRepository) GetByOwner(ownerID uint) ([]Game, error) {
	var games []Game
	err := r.db.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("list games by owner: %w", err)
	}
	return games, nil
}

// Search matches the keyword as a case-insensitive substring across team
// name, sport, location and description. Open games only.
func (r *gormGameRepository) Search(keyword string) ([]Game, error) {
	pattern := "%" + keyword + "%"
	var games []Game
	err := r.db.Where("status = ?", StatusOpen).
		Where(
			r.db.Where("LOWER(team_name) LIKE LOWER(?)", pattern).
				Or("LOWER(sport) LIKE LOWER(?)", pattern).
				Or("LOWER(location) LIKE LOWER(?)", pattern).
				Or("LOWER(description) LIKE LOWER(?)", pattern),
		).
		Order("date ASC, time ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	return games, nil
}

// UpdateStatus writes the status owner-scoped; a zero-row update means the
// game is gone or belongs to someone else, which the caller has already
// distinguished.
func (r *gormGameRepository) UpdateStatus(id uint, status GameStatus, ownerID uint) error {
	res := r.db.Model(&Game{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update game status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *gormGameRepository) Delete(id uint, ownerID uint) error {
	res := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&Game{})
	if res.Error != nil {
		return fmt.Errorf("delete game: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
