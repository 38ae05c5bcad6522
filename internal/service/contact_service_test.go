package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/devfolio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordingNotifier struct {
	messages []db.ContactMessage
	fail     bool
}

func (n *recordingNotifier) NotifyContact(message db.ContactMessage) error {
	n.messages = append(n.messages, message)
	if n.fail {
		return fmt.Errorf("notify failed")
	}
	return nil
}

func setupContactServiceTest(t *testing.T, notifier Notifier) (*ContactService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:contact-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := gdb.AutoMigrate(&db.ContactMessage{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return NewContactService(gdb, notifier), gdb
}

func TestContactServiceSubmitNotifies(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, _ := setupContactServiceTest(t, notifier)

	item, err := svc.Submit(ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello there",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if len(notifier.messages) != 1 || notifier.messages[0].ID != item.ID {
		t.Fatalf("expected notifier to receive the message, got %v", notifier.messages)
	}
}

func TestContactServiceNotifierFailureDoesNotFailSubmit(t *testing.T) {
	notifier := &recordingNotifier{fail: true}
	svc, gdb := setupContactServiceTest(t, notifier)

	if _, err := svc.Submit(ContactInput{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello",
	}); err != nil {
		t.Fatalf("submit should succeed despite notifier failure: %v", err)
	}

	var count int64
	gdb.Model(&db.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected message persisted, got %d", count)
	}
}

func TestContactServiceValidatesInput(t *testing.T) {
	svc, _ := setupContactServiceTest(t, nil)

	_, err := svc.Submit(ContactInput{Email: "not-an-email"})
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"name", "email", "message"} {
		if _, found := verr.Fields[field]; !found {
			t.Fatalf("expected error for %s, got %v", field, verr.Fields)
		}
	}
}

func TestContactServiceListLatestFirst(t *testing.T) {
	svc, gdb := setupContactServiceTest(t, nil)

	old := db.ContactMessage{Name: "First", Email: "a@example.com", Message: "hi"}
	old.CreatedAt = time.Now().Add(-time.Hour)
	if err := gdb.Create(&old).Error; err != nil {
		t.Fatalf("seed old: %v", err)
	}
	if _, err := svc.Submit(ContactInput{Name: "Second", Email: "b@example.com", Message: "hi"}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Second" {
		t.Fatalf("expected latest first, got %v", items)
	}
}

func TestContactServiceDelete(t *testing.T) {
	svc, _ := setupContactServiceTest(t, nil)

	item, err := svc.Submit(ContactInput{Name: "Visitor", Email: "v@example.com", Message: "hi"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.Delete(item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(item.ID); err != ErrMessageNotFound {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}
