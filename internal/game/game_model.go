package game

import "gorm.io/gorm"

type GameStatus string

const (
	StatusOpen    GameStatus = "open"
	StatusMatched GameStatus = "matched"
)

// Game is an open practice-match slot posted by a team. Status is mutated
// only by the match approval/cancellation transactions; everything else is
// owner-edited. A game may be deleted only while open.
type Game struct {
	gorm.Model
	TeamName    string     `gorm:"not null" json:"team_name"`
	Sport       string     `gorm:"not null;index" json:"sport"`
	Date        string     `gorm:"size:10;not null;index" json:"date"`
	Time        string     `gorm:"size:5;not null" json:"time"`
	Location    string     `gorm:"not null" json:"location"`
	Contact     string     `gorm:"not null" json:"contact"`
	Description string     `json:"description,omitempty"`
	Status      GameStatus `gorm:"size:16;not null;default:open;index" json:"status"`
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
}
