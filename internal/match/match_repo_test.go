package match

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keita-f/scrimmage/internal/application"
	"github.com/keita-f/scrimmage/internal/game"
	"github.com/keita-f/scrimmage/internal/user"
	"github.com/keita-f/scrimmage/pkg/apperrors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// a single connection keeps the in-memory database alive across queries
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&user.User{}, &game.Game{}, &application.Application{}, &Match{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

const (
	ownerID  uint = 1
	guest1ID uint = 2
	guest2ID uint = 3
)

// seedGameWithApplications creates one open game owned by ownerID and two
// pending applications from guest1ID and guest2ID.
func seedGameWithApplications(t *testing.T, db *gorm.DB) (*game.Game, *application.Application, *application.Application) {
	t.Helper()
	g := &game.Game{
		TeamName: "Raccoons",
		Sport:    "soccer",
		Date:     "2030-04-12",
		Time:     "14:00",
		Location: "North Field",
		Contact:  "raccoons@example.com",
		Status:   game.StatusOpen,
		OwnerID:  ownerID,
	}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	a1 := &application.Application{
		GameID:            g.ID,
		ApplicantID:       guest1ID,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            application.StatusPending,
	}
	a2 := &application.Application{
		GameID:            g.ID,
		ApplicantID:       guest2ID,
		ApplicantTeamName: "Badgers",
		ApplicantContact:  "badgers@example.com",
		Status:            application.StatusPending,
	}
	if err := db.Create(a1).Error; err != nil {
		t.Fatalf("seed application 1: %v", err)
	}
	if err := db.Create(a2).Error; err != nil {
		t.Fatalf("seed application 2: %v", err)
	}
	return g, a1, a2
}

func TestApproveApplication(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	g, a1, a2 := seedGameWithApplications(t, db)

	m, err := repo.ApproveApplication(a1.ID, ownerID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	if m.GameID != g.ID || m.ApplicationID != a1.ID {
		t.Errorf("match links wrong rows: game %d application %d", m.GameID, m.ApplicationID)
	}
	if m.HostID != ownerID || m.GuestID != guest1ID {
		t.Errorf("match participants = host %d guest %d", m.HostID, m.GuestID)
	}
	if m.HostTeamName != "Raccoons" || m.GuestTeamName != "Foxes" {
		t.Errorf("snapshot names = %q vs %q", m.HostTeamName, m.GuestTeamName)
	}
	if m.Sport != g.Sport || m.Date != g.Date || m.Time != g.Time || m.Location != g.Location {
		t.Errorf("snapshot slot data does not mirror the game")
	}
	if m.MatchedAt.IsZero() {
		t.Error("MatchedAt not set")
	}

	var gAfter game.Game
	if err := db.First(&gAfter, g.ID).Error; err != nil {
		t.Fatalf("reload game: %v", err)
	}
	if gAfter.Status != game.StatusMatched {
		t.Errorf("game status = %q, want matched", gAfter.Status)
	}

	var a1After, a2After application.Application
	if err := db.First(&a1After, a1.ID).Error; err != nil {
		t.Fatalf("reload application 1: %v", err)
	}
	if err := db.First(&a2After, a2.ID).Error; err != nil {
		t.Fatalf("reload application 2: %v", err)
	}
	if a1After.Status != application.StatusApproved {
		t.Errorf("approved application status = %q", a1After.Status)
	}
	if a2After.Status != application.StatusRejected {
		t.Errorf("sibling application status = %q, want rejected", a2After.Status)
	}
}

func TestApproveApplicationNotPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	_, a1, a2 := seedGameWithApplications(t, db)

	if _, err := repo.ApproveApplication(a1.ID, ownerID); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	// the winning application is no longer pending
	if _, err := repo.ApproveApplication(a1.ID, ownerID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("re-approve winner: err = %v, want ErrConflict", err)
	}
	// the rejected sibling cannot be approved either
	if _, err := repo.ApproveApplication(a2.ID, ownerID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("approve rejected sibling: err = %v, want ErrConflict", err)
	}
}

func TestApproveApplicationForbiddenForNonOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	_, a1, _ := seedGameWithApplications(t, db)

	if _, err := repo.ApproveApplication(a1.ID, guest2ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	// and the rows are untouched
	var a1After application.Application
	if err := db.First(&a1After, a1.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if a1After.Status != application.StatusPending {
		t.Errorf("application status = %q after forbidden approve", a1After.Status)
	}
}

func TestApproveApplicationMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	if _, err := repo.ApproveApplication(9999, ownerID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestApproveApplicationGameAlreadyMatched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	g, a1, _ := seedGameWithApplications(t, db)

	if err := db.Model(&game.Game{}).Where("id = ?", g.ID).
		Update("status", game.StatusMatched).Error; err != nil {
		t.Fatalf("flip game status: %v", err)
	}

	if _, err := repo.ApproveApplication(a1.ID, ownerID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("err = %v, want ErrConflict", err)
	}
}

func TestRejectApplication(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	g, a1, a2 := seedGameWithApplications(t, db)

	rejected, err := repo.RejectApplication(a1.ID, ownerID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.ID != a1.ID {
		t.Errorf("rejected wrong application: %d", rejected.ID)
	}

	// rejecting one application leaves the game open and siblings pending
	var gAfter game.Game
	if err := db.First(&gAfter, g.ID).Error; err != nil {
		t.Fatalf("reload game: %v", err)
	}
	if gAfter.Status != game.StatusOpen {
		t.Errorf("game status = %q, want open", gAfter.Status)
	}
	var a2After application.Application
	if err := db.First(&a2After, a2.ID).Error; err != nil {
		t.Fatalf("reload sibling: %v", err)
	}
	if a2After.Status != application.StatusPending {
		t.Errorf("sibling status = %q, want pending", a2After.Status)
	}

	if _, err := repo.RejectApplication(a1.ID, ownerID); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("second reject: err = %v, want ErrConflict", err)
	}
	if _, err := repo.RejectApplication(a2.ID, guest1ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("non-owner reject: err = %v, want ErrForbidden", err)
	}
}

func TestCancelRestoresGameAndApplications(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	g, a1, a2 := seedGameWithApplications(t, db)

	m, err := repo.ApproveApplication(a1.ID, ownerID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	// guest may cancel as well as host
	if err := repo.Cancel(m.ID, guest1ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	var count int64
	if err := db.Model(&Match{}).Where("id = ?", m.ID).Count(&count).Error; err != nil {
		t.Fatalf("count matches: %v", err)
	}
	if count != 0 {
		t.Error("match row still present after cancel")
	}

	var gAfter game.Game
	if err := db.First(&gAfter, g.ID).Error; err != nil {
		t.Fatalf("reload game: %v", err)
	}
	if gAfter.Status != game.StatusOpen {
		t.Errorf("game status = %q, want open", gAfter.Status)
	}

	for _, id := range []uint{a1.ID, a2.ID} {
		var a application.Application
		if err := db.First(&a, id).Error; err != nil {
			t.Fatalf("reload application %d: %v", id, err)
		}
		if a.Status != application.StatusPending {
			t.Errorf("application %d status = %q, want pending", id, a.Status)
		}
	}
}

func TestCancelThenApproveOtherApplication(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	_, a1, a2 := seedGameWithApplications(t, db)

	m, err := repo.ApproveApplication(a1.ID, ownerID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if err := repo.Cancel(m.ID, ownerID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// the cycle can run again with the other applicant
	m2, err := repo.ApproveApplication(a2.ID, ownerID)
	if err != nil {
		t.Fatalf("approve after cancel: %v", err)
	}
	if m2.GuestID != guest2ID || m2.GuestTeamName != "Badgers" {
		t.Errorf("second match guest = %d %q", m2.GuestID, m2.GuestTeamName)
	}

	var a1After application.Application
	if err := db.First(&a1After, a1.ID).Error; err != nil {
		t.Fatalf("reload application 1: %v", err)
	}
	if a1After.Status != application.StatusRejected {
		t.Errorf("first applicant status = %q, want rejected", a1After.Status)
	}
}

func TestCancelAuthorization(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)
	_, a1, _ := seedGameWithApplications(t, db)

	m, err := repo.ApproveApplication(a1.ID, ownerID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	if err := repo.Cancel(m.ID, guest2ID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("outsider cancel: err = %v, want ErrForbidden", err)
	}
	if err := repo.Cancel(9999, ownerID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("missing match cancel: err = %v, want ErrNotFound", err)
	}

	// the forbidden attempt must not have mutated anything
	var mAfter Match
	if err := db.First(&mAfter, m.ID).Error; err != nil {
		t.Fatalf("reload match: %v", err)
	}
}

func TestMatchListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMatchRepository(db)

	rows := []Match{
		{GameID: 1, ApplicationID: 1, HostTeamName: "A", GuestTeamName: "B", HostContact: "a", GuestContact: "b",
			HostID: ownerID, GuestID: guest1ID, Sport: "soccer", Date: "2030-01-10", Time: "10:00", Location: "x"},
		{GameID: 2, ApplicationID: 2, HostTeamName: "C", GuestTeamName: "A", HostContact: "c", GuestContact: "a",
			HostID: guest2ID, GuestID: ownerID, Sport: "tennis", Date: "2020-06-01", Time: "09:00", Location: "y"},
		{GameID: 3, ApplicationID: 3, HostTeamName: "C", GuestTeamName: "B", HostContact: "c", GuestContact: "b",
			HostID: guest2ID, GuestID: guest1ID, Sport: "soccer", Date: "2030-02-01", Time: "18:00", Location: "z"},
	}
	for i := range rows {
		if err := db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed match %d: %v", i, err)
		}
	}

	all, err := repo.GetByUser(ownerID)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("GetByUser returned %d matches, want 2", len(all))
	}

	hosted, err := repo.GetHostedBy(ownerID)
	if err != nil {
		t.Fatalf("GetHostedBy: %v", err)
	}
	if len(hosted) != 1 || hosted[0].GameID != 1 {
		t.Errorf("GetHostedBy = %+v", hosted)
	}

	guest, err := repo.GetGuestOf(ownerID)
	if err != nil {
		t.Fatalf("GetGuestOf: %v", err)
	}
	if len(guest) != 1 || guest[0].GameID != 2 {
		t.Errorf("GetGuestOf = %+v", guest)
	}

	today := "2026-01-01"
	upcoming, err := repo.GetUpcoming(ownerID, today)
	if err != nil {
		t.Fatalf("GetUpcoming: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Date != "2030-01-10" {
		t.Errorf("GetUpcoming = %+v", upcoming)
	}

	past, err := repo.GetPast(ownerID, today)
	if err != nil {
		t.Fatalf("GetPast: %v", err)
	}
	if len(past) != 1 || past[0].Date != "2020-06-01" {
		t.Errorf("GetPast = %+v", past)
	}
}

func TestWithRole(t *testing.T) {
	m := Match{
		HostTeamName: "Raccoons", GuestTeamName: "Foxes",
		HostContact: "r@example.com", GuestContact: "f@example.com",
		HostID: ownerID, GuestID: guest1ID,
	}

	asHost := withRole(m, ownerID)
	if !asHost.IsHost || asHost.UserRole != "host" {
		t.Errorf("host view = %+v", asHost)
	}
	if asHost.Opponent.TeamName != "Foxes" || asHost.Opponent.ID != guest1ID {
		t.Errorf("host opponent = %+v", asHost.Opponent)
	}

	asGuest := withRole(m, guest1ID)
	if !asGuest.IsGuest || asGuest.UserRole != "guest" {
		t.Errorf("guest view = %+v", asGuest)
	}
	if asGuest.Opponent.TeamName != "Raccoons" || asGuest.Opponent.ID != ownerID {
		t.Errorf("guest opponent = %+v", asGuest.Opponent)
	}
}
