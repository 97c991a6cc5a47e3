package service

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"campus_transport/internal/apperrors"
	"campus_transport/internal/store"
	"campus_transport/internal/testutil"
)

func studentCount(t *testing.T, st store.Store) int64 {
	t.Helper()
	counts, err := st.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts() error = %v", err)
	}
	return counts.Students
}

func TestCreateStudentHashesPassword(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	student, err := svc.Students.Create(ctx, StudentInput{
		Name:       "C KIRAN",
		RollNumber: "24211A0599",
		Password:   "secret-pass",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if student.Password == "secret-pass" {
		t.Fatal("plaintext password persisted")
	}
	stored, err := st.StudentByRollNumber(ctx, "24211A0599")
	if err != nil {
		t.Fatalf("StudentByRollNumber() error = %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret-pass")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestCreateStudentRequiresPassword(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()
	before := studentCount(t, st)

	for _, password := range []string{"", "   "} {
		_, err := svc.Students.Create(ctx, StudentInput{Name: "X", RollNumber: "24211A0600", Password: password})
		if err != apperrors.ErrPasswordRequired {
			t.Errorf("Create() with password %q error = %v, want ErrPasswordRequired", password, err)
		}
	}
	if got := studentCount(t, st); got != before {
		t.Errorf("student count changed on rejected create: %d -> %d", before, got)
	}
}

func TestCreateStudentDuplicateRollNumber(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()
	before := studentCount(t, st)

	// 24211A0538 exists in the seed fixtures
	_, err := svc.Students.Create(ctx, StudentInput{
		Name:       "IMPOSTOR",
		RollNumber: "24211A0538",
		Password:   "whatever",
	})
	if err != apperrors.ErrRollNumberExists {
		t.Fatalf("Create() error = %v, want ErrRollNumberExists", err)
	}
	if got := studentCount(t, st); got != before {
		t.Errorf("student count changed on duplicate create: %d -> %d", before, got)
	}
}

func TestCreateStudentRejectsUnknownBus(t *testing.T) {
	svc, _ := seededServices(t)
	ctx := context.Background()

	_, err := svc.Students.Create(ctx, StudentInput{
		Name:       "X",
		RollNumber: "24211A0601",
		Password:   "pw",
		BusID:      testutil.UintPtr(9999),
	})
	if err != apperrors.ErrBusNotFound {
		t.Errorf("Create() error = %v, want ErrBusNotFound", err)
	}
}

func TestUpdateStudentBlankPasswordKeepsHash(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	original, err := st.StudentByRollNumber(ctx, "24211A0538")
	if err != nil {
		t.Fatalf("StudentByRollNumber() error = %v", err)
	}

	updated, err := svc.Students.Update(ctx, original.ID, StudentInput{
		Name:       original.Name,
		RollNumber: original.RollNumber,
		Password:   "",
		BusID:      original.BusID,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Password != original.Password {
		t.Error("blank password changed the stored hash")
	}

	updated, err = svc.Students.Update(ctx, original.ID, StudentInput{
		Name:       original.Name,
		RollNumber: original.RollNumber,
		Password:   "new-password",
		BusID:      original.BusID,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Password == original.Password {
		t.Error("non-blank password left the stored hash unchanged")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-password")); err != nil {
		t.Errorf("new hash does not verify: %v", err)
	}
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc, _ := seededServices(t)

	_, err := svc.Students.Update(context.Background(), 9999, StudentInput{Name: "X", RollNumber: "Y"})
	if err != apperrors.ErrStudentNotFound {
		t.Errorf("Update() error = %v, want ErrStudentNotFound", err)
	}
}

func TestDeleteStudent(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	student, err := st.StudentByRollNumber(ctx, "24211A0512")
	if err != nil {
		t.Fatalf("StudentByRollNumber() error = %v", err)
	}
	before := studentCount(t, st)

	if err := svc.Students.Delete(ctx, student.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got := studentCount(t, st); got != before-1 {
		t.Errorf("student count = %d, want %d", got, before-1)
	}

	if err := svc.Students.Delete(ctx, student.ID); err != apperrors.ErrStudentNotFound {
		t.Errorf("second Delete() error = %v, want ErrStudentNotFound", err)
	}
}

// Deletes are permanent, so a removed student's roll number is free for
// reuse.
func TestRecreateStudentAfterDelete(t *testing.T) {
	svc, st := seededServices(t)
	ctx := context.Background()

	student, err := st.StudentByRollNumber(ctx, "24211A0512")
	if err != nil {
		t.Fatalf("StudentByRollNumber() error = %v", err)
	}
	if err := svc.Students.Delete(ctx, student.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.Students.Create(ctx, StudentInput{
		Name:       "A SANDEEP",
		RollNumber: "24211A0512",
		Password:   "student123",
	}); err != nil {
		t.Fatalf("Create() after delete error = %v", err)
	}
	stored, err := st.StudentByRollNumber(ctx, "24211A0512")
	if err != nil {
		t.Fatalf("StudentByRollNumber() after recreate error = %v", err)
	}
	if stored.Name != "A SANDEEP" {
		t.Errorf("recreated student name = %q", stored.Name)
	}
}

func TestListStudentsOrderedWithBusNumbers(t *testing.T) {
	svc, _ := seededServices(t)

	listings, err := svc.Students.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("List() returned %d rows, want 2", len(listings))
	}
	// Ordered by name: A SANDEEP before B SAI RISHIK REDDY
	if listings[0].Name != "A SANDEEP" || listings[1].Name != "B SAI RISHIK REDDY" {
		t.Errorf("List() order = [%s, %s]", listings[0].Name, listings[1].Name)
	}
	if listings[0].BusNumber != "SA3" {
		t.Errorf("A SANDEEP bus = %q, want SA3", listings[0].BusNumber)
	}
	if listings[1].BusNumber != "J9" {
		t.Errorf("B SAI RISHIK REDDY bus = %q, want J9", listings[1].BusNumber)
	}
}
