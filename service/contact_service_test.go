package service

import (
	"context"
	"portfolio/config"
	"portfolio/database"
	"portfolio/models"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.Config{
		DatabaseDriver:     database.DriverSQLite,
		DatabaseURL:        ":memory:",
		SQLiteMaxOpenConns: 1,
		SQLiteMaxIdleConns: 1,
	})
	if err != nil {
		t.Fatalf("database.Open: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestContactService_Create(t *testing.T) {
	db := openTestDB(t)
	svc := NewContactService(db)

	got, err := svc.Create(context.Background(), models.ContactCreate{
		Name:    "Grace",
		Email:   "grace@example.com",
		Subject: "Hello",
		Message: "  keeps whitespace  ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	var stored models.ContactSubmission
	if err := db.First(&stored, "id = ?", got.ID).Error; err != nil {
		t.Fatalf("load stored submission: %v", err)
	}
	if stored.Name != "Grace" || stored.Email != "grace@example.com" || stored.Subject != "Hello" {
		t.Fatalf("unexpected stored submission: %+v", stored)
	}
	if stored.Message != "  keeps whitespace  " {
		t.Fatalf("expected message stored verbatim, got %q", stored.Message)
	}
}

func TestContactService_CreateEmptyFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewContactService(db)

	if _, err := svc.Create(context.Background(), models.ContactCreate{}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	var count int64
	if err := db.Model(&models.ContactSubmission{}).
		Where("name = ? AND email = ? AND subject = ? AND message = ?", "", "", "", "").
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one empty submission, got %d", count)
	}
}

func TestContactService_CreateFailsWhenClosed(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB: %v", err)
	}
	_ = sqlDB.Close()

	if _, err := NewContactService(db).Create(context.Background(), models.ContactCreate{Name: "x"}); err == nil {
		t.Fatalf("expected error on closed database")
	}
}
