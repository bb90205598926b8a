package application

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/keita-f/scrimmage/internal/game"
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
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&game.Game{}, &Application{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedGame(t *testing.T, db *gorm.DB, ownerID uint) *game.Game {
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
	return g
}

func TestCreateDuplicateApplication(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	g := seedGame(t, db, 1)

	first := &Application{
		GameID:            g.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(first); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &Application{
		GameID:            g.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(dup); !errors.Is(err, apperrors.ErrDuplicate) {
		t.Errorf("duplicate create: err = %v, want ErrDuplicate", err)
	}

	// a different applicant on the same game is fine
	other := &Application{
		GameID:            g.ID,
		ApplicantID:       3,
		ApplicantTeamName: "Badgers",
		ApplicantContact:  "badgers@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(other); err != nil {
		t.Errorf("second applicant: %v", err)
	}
}

func TestWithdrawAndReapply(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	g := seedGame(t, db, 1)

	a := &Application{
		GameID:            g.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(a); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(a.ID, 2); err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if _, err := repo.GetByID(a.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("get after withdraw: err = %v, want ErrNotFound", err)
	}

	// the row is gone for real, so applying again works
	again := &Application{
		GameID:            g.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(again); err != nil {
		t.Errorf("re-apply after withdrawal: %v", err)
	}
}

func TestWithdrawGuards(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	g := seedGame(t, db, 1)

	a := &Application{
		GameID:            g.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(a); err != nil {
		t.Fatalf("create: %v", err)
	}

	// someone else's id does not match the row
	if err := repo.Delete(a.ID, 3); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("withdraw as other user: err = %v, want ErrConflict", err)
	}

	// once the application has been processed the guard kicks in
	if err := db.Model(&Application{}).Where("id = ?", a.ID).
		Update("status", StatusApproved).Error; err != nil {
		t.Fatalf("flip status: %v", err)
	}
	if err := repo.Delete(a.ID, 2); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("withdraw approved: err = %v, want ErrConflict", err)
	}
}

func TestExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	g := seedGame(t, db, 1)

	ok, err := repo.Exists(g.ID, 2)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if ok {
		t.Error("exists before create")
	}

	a := &Application{
		GameID:            g.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	if err := repo.Create(a); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err = repo.Exists(g.ID, 2)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !ok {
		t.Error("exists after create")
	}
}

func TestDashboardJoins(t *testing.T) {
	db := setupTestDB(t)
	repo := NewApplicationRepository(db)
	mine := seedGame(t, db, 1)
	theirs := seedGame(t, db, 9)

	sent := &Application{
		GameID:            theirs.ID,
		ApplicantID:       1,
		ApplicantTeamName: "Raccoons",
		ApplicantContact:  "raccoons@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	received := &Application{
		GameID:            mine.ID,
		ApplicantID:       2,
		ApplicantTeamName: "Foxes",
		ApplicantContact:  "foxes@example.com",
		Status:            StatusPending,
		AppliedAt:         time.Now(),
	}
	for _, a := range []*Application{sent, received} {
		if err := repo.Create(a); err != nil {
			t.Fatalf("seed application: %v", err)
		}
	}

	got, err := repo.GetSentByUser(1)
	if err != nil {
		t.Fatalf("GetSentByUser: %v", err)
	}
	if len(got) != 1 || got[0].ID != sent.ID {
		t.Fatalf("GetSentByUser = %+v", got)
	}
	if got[0].GameTeamName != theirs.TeamName || got[0].GameDate != theirs.Date {
		t.Errorf("game summary = %+v", got[0])
	}

	got, err = repo.GetReceivedByOwner(1)
	if err != nil {
		t.Fatalf("GetReceivedByOwner: %v", err)
	}
	if len(got) != 1 || got[0].ID != received.ID {
		t.Fatalf("GetReceivedByOwner = %+v", got)
	}

	// applications against a deleted game drop out of both dashboards
	if err := db.Delete(&game.Game{}, mine.ID).Error; err != nil {
		t.Fatalf("soft-delete game: %v", err)
	}
	got, err = repo.GetReceivedByOwner(1)
	if err != nil {
		t.Fatalf("GetReceivedByOwner: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("received after game deletion = %+v", got)
	}
}
