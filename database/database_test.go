package database

import (
	"context"
	"testing"

	"github.com/lshigami/campuspulse/config"
	"github.com/lshigami/campuspulse/internal/model"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Driver = "sqlite"
	cfg.Database.SQLitePath = "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestNewDatabaseRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"
	if _, err := NewDatabase(cfg); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	opts := SeedOptions{AdminUsername: "admin", AdminPassword: "admin123"}
	for i := 0; i < 2; i++ {
		if err := Seed(context.Background(), db, opts); err != nil {
			t.Fatalf("seed run %d: %v", i, err)
		}
	}

	var depts, admins, questions int64
	db.Model(&model.Department{}).Count(&depts)
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&admins)
	db.Model(&model.Question{}).Count(&questions)

	if depts != int64(len(DefaultDepartments)) {
		t.Fatalf("departments = %d", depts)
	}
	if admins != 1 {
		t.Fatalf("admins = %d", admins)
	}
	if questions != 25 {
		t.Fatalf("questions = %d, want 25", questions)
	}
	if err := Ping(db); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestSeedKeepsCatalogOrder(t *testing.T) {
	db := openTestDB(t)
	if err := Seed(context.Background(), db, SeedOptions{}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var qs []model.Question
	if err := db.Order("created_at asc").Find(&qs).Error; err != nil {
		t.Fatalf("list: %v", err)
	}
	if qs[0].Category != "Academics" || qs[len(qs)-1].Category != "Overall" {
		t.Fatalf("unexpected order: first=%s last=%s", qs[0].Category, qs[len(qs)-1].Category)
	}
}
