package game

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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
	if err := db.AutoMigrate(&Game{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedGames(t *testing.T, db *gorm.DB) {
	t.Helper()
	games := []Game{
		{TeamName: "Raccoons", Sport: "soccer", Date: "2030-04-12", Time: "14:00",
			Location: "North Field", Contact: "r@example.com", Status: StatusOpen, OwnerID: 1},
		{TeamName: "Foxes", Sport: "tennis", Date: "2030-03-01", Time: "10:00",
			Location: "Court 2", Contact: "f@example.com", Status: StatusOpen, OwnerID: 2,
			Description: "friendly doubles"},
		{TeamName: "Badgers", Sport: "soccer", Date: "2030-05-20", Time: "18:00",
			Location: "South Field", Contact: "b@example.com", Status: StatusMatched, OwnerID: 3},
	}
	for i := range games {
		if err := db.Create(&games[i]).Error; err != nil {
			t.Fatalf("seed game %d: %v", i, err)
		}
	}
}

func TestListOpenGames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGames(t, db)

	games, err := repo.GetAllOpen()
	if err != nil {
		t.Fatalf("GetAllOpen: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("open games = %d, want 2", len(games))
	}
	// ordered by date, earliest first
	if games[0].TeamName != "Foxes" || games[1].TeamName != "Raccoons" {
		t.Errorf("order = %s, %s", games[0].TeamName, games[1].TeamName)
	}

	soccer, err := repo.GetBySport("soccer")
	if err != nil {
		t.Fatalf("GetBySport: %v", err)
	}
	// the matched soccer game is excluded
	if len(soccer) != 1 || soccer[0].TeamName != "Raccoons" {
		t.Errorf("soccer games = %+v", soccer)
	}
}

func TestSearchGames(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGames(t, db)

	cases := []struct {
		keyword string
		want    int
	}{
		{"FIELD", 1},    // location, case-insensitive, matched game excluded
		{"doubles", 1},  // description
		{"tennis", 1},   // sport
		{"raccoon", 1},  // team name substring
		{"handball", 0}, // no hit
	}
	for _, tc := range cases {
		got, err := repo.Search(tc.keyword)
		if err != nil {
			t.Fatalf("Search(%q): %v", tc.keyword, err)
		}
		if len(got) != tc.want {
			t.Errorf("Search(%q) = %d games, want %d", tc.keyword, len(got), tc.want)
		}
	}
}

func TestGetByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGames(t, db)

	games, err := repo.GetByOwner(3)
	if err != nil {
		t.Fatalf("GetByOwner: %v", err)
	}
	// owner listing includes matched games
	if len(games) != 1 || games[0].Status != StatusMatched {
		t.Errorf("owner games = %+v", games)
	}
}

func TestUpdateStatusOwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGames(t, db)

	var g Game
	if err := db.Where("team_name = ?", "Raccoons").First(&g).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if err := repo.UpdateStatus(g.ID, StatusMatched, 2); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("update as non-owner: err = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateStatus(g.ID, StatusMatched, 1); err != nil {
		t.Fatalf("update as owner: %v", err)
	}

	after, err := repo.GetByID(g.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Status != StatusMatched {
		t.Errorf("status = %q, want matched", after.Status)
	}
}

func TestDeleteOwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGameRepository(db)
	seedGames(t, db)

	var g Game
	if err := db.Where("team_name = ?", "Foxes").First(&g).Error; err != nil {
		t.Fatalf("load game: %v", err)
	}

	if err := repo.Delete(g.ID, 1); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("delete as non-owner: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(g.ID, 2); err != nil {
		t.Fatalf("delete as owner: %v", err)
	}
	if _, err := repo.GetByID(g.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}
