package scheduler

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keita-f/scrimmage/internal/application"
	"github.com/keita-f/scrimmage/internal/game"
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
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&game.Game{}, &application.Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSweepStaleApplications(t *testing.T) {
	db := setupTestDB(t)

	past := &game.Game{TeamName: "A", Sport: "soccer", Date: "2020-01-01", Time: "10:00",
		Location: "x", Contact: "a", Status: game.StatusOpen, OwnerID: 1}
	future := &game.Game{TeamName: "B", Sport: "soccer", Date: "2030-01-01", Time: "10:00",
		Location: "y", Contact: "b", Status: game.StatusOpen, OwnerID: 2}
	for _, g := range []*game.Game{past, future} {
		if err := db.Create(g).Error; err != nil {
			t.Fatalf("seed game: %v", err)
		}
	}

	stale := &application.Application{GameID: past.ID, ApplicantID: 3,
		ApplicantTeamName: "C", ApplicantContact: "c", Status: application.StatusPending}
	live := &application.Application{GameID: future.ID, ApplicantID: 3,
		ApplicantTeamName: "C", ApplicantContact: "c", Status: application.StatusPending}
	decided := &application.Application{GameID: past.ID, ApplicantID: 4,
		ApplicantTeamName: "D", ApplicantContact: "d", Status: application.StatusApproved}
	for _, a := range []*application.Application{stale, live, decided} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed application: %v", err)
		}
	}

	SweepStaleApplications(db)

	var got application.Application
	if err := db.First(&got, stale.ID).Error; err != nil {
		t.Fatalf("reload stale: %v", err)
	}
	if got.Status != application.StatusRejected {
		t.Errorf("stale application status = %q, want rejected", got.Status)
	}

	got = application.Application{}
	if err := db.First(&got, live.ID).Error; err != nil {
		t.Fatalf("reload live: %v", err)
	}
	if got.Status != application.StatusPending {
		t.Errorf("future-game application status = %q, want pending", got.Status)
	}

	got = application.Application{}
	if err := db.First(&got, decided.ID).Error; err != nil {
		t.Fatalf("reload decided: %v", err)
	}
	if got.Status != application.StatusApproved {
		t.Errorf("already-decided application status = %q, want approved", got.Status)
	}
}
