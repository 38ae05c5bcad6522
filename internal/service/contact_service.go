package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/devfolio/internal/db"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notifier 在新留言入库后收到通知。投递机制由实现决定，失败不影响请求。
type Notifier interface {
	NotifyContact(message db.ContactMessage) error
}

// LogNotifier 把新留言写进日志，作为默认的通知实现。
type LogNotifier struct{}

// NotifyContact implements Notifier.
func (LogNotifier) NotifyContact(message db.ContactMessage) error {
	log.Info().
		Str("name", message.Name).
		Str("email", message.Email).
		Msg("new contact message received")
	return nil
}

// ContactService handles contact message submission and admin management.
type ContactService struct {
	db       *gorm.DB
	notifier Notifier
}

// NewContactService creates a ContactService instance.
func NewContactService(gdb *gorm.DB, notifier Notifier) *ContactService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ContactService{db: gdb, notifier: notifier}
}

// ContactInput represents fields accepted from the public contact form.
type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}

// Submit validates and persists a contact message, then fires the notifier.
// 通知失败只记日志，留言本身已经落库。
func (s *ContactService) Submit(input ContactInput) (*db.ContactMessage, error) {
	if err := validateContactInput(input); err != nil {
		return nil, err
	}

	item := db.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   normalizeOptionalText(input.Phone),
		Message: strings.TrimSpace(input.Message),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	if err := s.notifier.NotifyContact(item); err != nil {
		log.Warn().Err(err).Msg("contact notification failed")
	}

	return &item, nil
}

// List returns all messages, latest first.
func (s *ContactService) List() ([]db.ContactMessage, error) {
	var items []db.ContactMessage
	if err := s.db.Order("created_at desc, id desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return items, nil
}

// Delete removes a message.
func (s *ContactService) Delete(id uint) error {
	var item db.ContactMessage
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMessageNotFound
		}
		return fmt.Errorf("find contact message: %w", err)
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}

func validateContactInput(input ContactInput) error {
	var b validationBuilder
	if strings.TrimSpace(input.Name) == "" {
		b.add("name", "The name field is required.")
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		b.add("email", "The email field is required.")
	} else if _, err := mail.ParseAddress(email); err != nil {
		b.add("email", "The email must be a valid email address.")
	}

	if strings.TrimSpace(input.Message) == "" {
		b.add("message", "The message field is required.")
	}
	return b.err()
}
