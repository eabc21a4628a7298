package service

import (
	"errors"
	"testing"

	"LabSite/config"
	"LabSite/internal/dto"
	"LabSite/internal/repo"
	"LabSite/model"
)

// setupTestDB connects to the test database, skipping when no MySQL server
// is reachable.
func setupTestDB(t *testing.T) {
	t.Helper()
	config.InitConfig()
	if err := repo.InitMysqlTest(); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
}

func TestCreateProfessorSingleton(t *testing.T) {
	setupTestDB(t)
	repo.Db.Where("1 = 1").Delete(&model.Professor{})

	name := "Prof. Kim"
	first, err := CreateProfessor(&dto.ProfessorRequest{Name: &name})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == 0 {
		t.Fatal("expect created record to have an id")
	}

	other := "Prof. Lee"
	_, err = CreateProfessor(&dto.ProfessorRequest{Name: &other})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expect conflict on second create, got %v", err)
	}

	got, err := GetProfessor()
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Prof. Kim" {
		t.Fatalf("expect the first record kept, got %q", got.Name)
	}
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	setupTestDB(t)
	repo.Db.Where("1 = 1").Delete(&model.Admin{})

	if _, err := CreateAdmin("admin", "secret"); err != nil {
		t.Fatal(err)
	}
	_, err := CreateAdmin("admin", "other")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expect conflict on duplicate username, got %v", err)
	}

	id, ok := VerifyAdminPassword("admin", "secret")
	if !ok || id == 0 {
		t.Fatal("expect original credential to verify")
	}
	if _, ok := VerifyAdminPassword("admin", "other"); ok {
		t.Fatal("expect rejected password not to verify")
	}
}
