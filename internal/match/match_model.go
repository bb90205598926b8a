package match

import "time"

// Match is the confirmed pairing produced by approving one application for a
// game. Host/guest team names and contacts are denormalized snapshots taken
// at approval time, so the pairing survives later edits to either side.
// Matches are hard-deleted on cancellation; the games.status flag plus the
// unique index on game_id are the source of truth for "matched".
type Match struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	GameID        uint      `gorm:"uniqueIndex;not null" json:"game_id"`
	ApplicationID uint      `gorm:"not null" json:"application_id"`
	HostTeamName  string    `gorm:"not null" json:"host_team_name"`
	GuestTeamName string    `gorm:"not null" json:"guest_team_name"`
	HostContact   string    `gorm:"not null" json:"host_contact"`
	GuestContact  string    `gorm:"not null" json:"guest_contact"`
	HostID        uint      `gorm:"not null;index" json:"host_id"`
	GuestID       uint      `gorm:"not null;index" json:"guest_id"`
	Sport         string    `gorm:"not null" json:"sport"`
	Date          string    `gorm:"size:10;not null;index" json:"date"`
	Time          string    `gorm:"size:5;not null" json:"time"`
	Location      string    `gorm:"not null" json:"location"`
	Description   string    `json:"description,omitempty"`
	MatchedAt     time.Time `json:"matched_at"`
}

// MatchWithRole annotates a match with the requesting user's side of it.
type MatchWithRole struct {
	Match
	UserRole string       `json:"user_role"`
	IsHost   bool         `json:"is_host"`
	IsGuest  bool         `json:"is_guest"`
	Opponent OpponentInfo `json:"opponent"`
}

type OpponentInfo struct {
	TeamName string `json:"team_name"`
	Contact  string `json:"contact"`
	ID       uint   `json:"id"`
}

func withRole(m Match, userID uint) MatchWithRole {
	isHost := m.HostID == userID
	role := "guest"
	opponent := OpponentInfo{TeamName: m.GuestTeamName, Contact: m.GuestContact, ID: m.GuestID}
	if isHost {
		role = "host"
	} else {
		opponent = OpponentInfo{TeamName: m.HostTeamName, Contact: m.HostContact, ID: m.HostID}
	}
	return MatchWithRole{
		Match:    m,
		UserRole: role,
		IsHost:   isHost,
		IsGuest:  m.GuestID == userID,
		Opponent: opponent,
	}
}
