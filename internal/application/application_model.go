package application

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Application is a request from another team to fill a game slot. At most one
// application exists per (game, applicant) pair. Rows are hard-deleted on
// withdrawal so the applicant can re-apply later; no soft delete.
type Application struct {
	ID                uint              `gorm:"primarykey" json:"id"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
	GameID            uint              `gorm:"not null;uniqueIndex:idx_game_applicant" json:"game_id"`
	ApplicantID       uint              `gorm:"not null;uniqueIndex:idx_game_applicant" json:"applicant_id"`
	ApplicantTeamName string            `gorm:"not null" json:"applicant_team_name"`
	ApplicantContact  string            `gorm:"not null" json:"applicant_contact"`
	Message           string            `json:"message,omitempty"`
	Status            ApplicationStatus `gorm:"size:16;not null;default:pending;index" json:"status"`
	AppliedAt         time.Time         `json:"applied_at"`
}

// ApplicationWithGame is the row shape for applicant/owner dashboards: the
// application plus a summary of the game it targets, mapped from a join in
// one place.
type ApplicationWithGame struct {
	Application
	GameTeamName string `json:"game_team_name"`
	GameSport    string `json:"game_sport"`
	GameDate     string `json:"game_date"`
	GameTime     string `json:"game_time"`
	GameLocation string `json:"game_location"`
}
