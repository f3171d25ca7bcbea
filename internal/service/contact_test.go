package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ContactBook/internal/model"
	"ContactBook/internal/model/dto"
	"ContactBook/internal/store"
	pkgerrors "ContactBook/pkg/errors"
	"ContactBook/pkg/snowflake"
)

func newTestService(t *testing.T) *ContactService {
	t.Helper()

	if err := snowflake.Init(1, 1); err != nil {
		t.Fatalf("failed to init snowflake: %v", err)
	}

	path := filepath.Join(t.TempDir(), "contacts.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&model.Contact{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return NewContactService(store.NewContactStore(db))
}

func TestCreateAssignsIDAndTrims(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	contact, err := svc.Create(ctx, dto.CreateContactRequest{
		Name:  "  Ada Lovelace  ",
		Email: " ada@example.com ",
		Phone: " +1 555 1234 ",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if contact.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if contact.Name != "Ada Lovelace" || contact.Email != "ada@example.com" || contact.Phone != "+1 555 1234" {
		t.Fatalf("expected trimmed fields, got %#v", contact)
	}

	contacts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(contacts) != 1 || contacts[0] != *contact {
		t.Fatalf("expected exactly the created record, got %#v", contacts)
	}

	if err := svc.Delete(ctx, contact.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	contacts, _ = svc.List(ctx)
	if len(contacts) != 0 {
		t.Fatalf("expected empty list after delete, got %#v", contacts)
	}
}

func TestCreateRejectsInvalidWithoutTouchingStore(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	cases := []dto.CreateContactRequest{
		{Name: "", Email: "ada@example.com", Phone: "1"},
		{Name: "Ada", Email: "", Phone: "1"},
		{Name: "Ada", Email: "ada@example.com", Phone: ""},
		{Name: "   ", Email: " ", Phone: "\t"},
		{Name: "Ada", Email: "not-an-email", Phone: "1"},
	}

	for _, req := range cases {
		_, err := svc.Create(ctx, req)
		if !errors.Is(err, pkgerrors.ValidationFailed) {
			t.Fatalf("request %#v: expected ValidationFailed, got %v", req, err)
		}
	}

	contacts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("store should be untouched, got %#v", contacts)
	}
}

func TestCreateValidationCarriesFieldMessages(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	_, err := svc.Create(context.Background(), dto.CreateContactRequest{Name: "Ada", Email: "bogus", Phone: ""})

	var fieldErr pkgerrors.FieldErrors
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fieldErr.Fields["email"] != "Enter a valid email" {
		t.Fatalf("unexpected email message: %q", fieldErr.Fields["email"])
	}
	if fieldErr.Fields["phone"] != "Phone is required" {
		t.Fatalf("unexpected phone message: %q", fieldErr.Fields["phone"])
	}
	if _, ok := fieldErr.Fields["name"]; ok {
		t.Fatalf("name should not carry an error: %#v", fieldErr.Fields)
	}
}

func TestCreateDuplicateEmailConflict(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Bob", Email: "bob@x.com", Phone: "1"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Bobby", Email: "bob@x.com", Phone: "2"})
	if !errors.Is(err, pkgerrors.EmailConflict) {
		t.Fatalf("expected EmailConflict, got %v", err)
	}

	contacts, _ := svc.List(ctx)
	if len(contacts) != 1 || contacts[0].Name != "Bob" {
		t.Fatalf("expected only the original Bob record, got %#v", contacts)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Ada", Email: "ada@example.com", Phone: "1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 用自身当前值更新，结果应与更新前相等，id 不变
	updated, err := svc.Update(ctx, created.ID, dto.UpdateContactRequest{
		Name:  created.Name,
		Email: created.Email,
		Phone: created.Phone,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if *updated != *created {
		t.Fatalf("expected identical record, got %#v vs %#v", updated, created)
	}
}

func TestUpdateReplacesAllFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Ada", Email: "ada@example.com", Phone: "1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, dto.UpdateContactRequest{
		Name:  " Ada Lovelace ",
		Email: " lovelace@example.com ",
		Phone: " 2 ",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must not change: %d vs %d", updated.ID, created.ID)
	}
	if updated.Name != "Ada Lovelace" || updated.Email != "lovelace@example.com" || updated.Phone != "2" {
		t.Fatalf("expected trimmed replaced fields, got %#v", updated)
	}
}

func TestUpdateNotFoundLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Ada", Email: "ada@example.com", Phone: "1"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, created.ID+1, dto.UpdateContactRequest{Name: "X", Email: "x@y.co", Phone: "9"})
	if !errors.Is(err, pkgerrors.ContactNotFound) {
		t.Fatalf("expected ContactNotFound, got %v", err)
	}

	contacts, _ := svc.List(ctx)
	if len(contacts) != 1 || contacts[0] != *created {
		t.Fatalf("store should be unchanged, got %#v", contacts)
	}
}

func TestDeleteNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, pkgerrors.ContactNotFound) {
		t.Fatalf("expected ContactNotFound, got %v", err)
	}
}

func TestUpdateEmailCollidesWithOtherRecord(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Ada", Email: "ada@example.com", Phone: "1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	bob, err := svc.Create(ctx, dto.CreateContactRequest{Name: "Bob", Email: "bob@x.com", Phone: "2"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = svc.Update(ctx, bob.ID, dto.UpdateContactRequest{Name: "Bob", Email: "ada@example.com", Phone: "2"})
	if !errors.Is(err, pkgerrors.EmailConflict) {
		t.Fatalf("expected EmailConflict, got %v", err)
	}
}

func TestListOrderedByName(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Ada", "Bob"} {
		if _, err := svc.Create(ctx, dto.CreateContactRequest{Name: name, Email: name + "@example.com", Phone: "1"}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	contacts, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"Ada", "Bob", "Charlie"}
	for i, name := range want {
		if contacts[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, contacts[i].Name)
		}
	}
}
