package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// ExperienceService handles work experience CRUD.
type ExperienceService struct {
	db *gorm.DB
}

// NewExperienceService creates an ExperienceService instance.
func NewExperienceService(gdb *gorm.DB) *ExperienceService {
	return &ExperienceService{db: gdb}
}

// ExperienceInput represents fields accepted when creating or updating an
// experience entry. Technologies 允许为空，与项目的 tech_stack 不同。
type ExperienceInput struct {
	Company      string
	Role         string
	Period       string
	Description  string
	Technologies any
}

// List returns all experiences, newest first.
func (s *ExperienceService) List() ([]db.Experience, error) {
	var items []db.Experience
	if err := s.db.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}
	return items, nil
}

// Create inserts a new experience entry.
func (s *ExperienceService) Create(input ExperienceInput) (*db.Experience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	item := db.Experience{
		Company:      strings.TrimSpace(input.Company),
		Role:         strings.TrimSpace(input.Role),
		Period:       strings.TrimSpace(input.Period),
		Description:  strings.TrimSpace(input.Description),
		Technologies: db.StringList(NormalizeStringList(input.Technologies)),
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}
	return &item, nil
}

// Update modifies an existing experience entry.
func (s *ExperienceService) Update(id uint, input ExperienceInput) (*db.Experience, error) {
	if err := validateExperienceInput(input); err != nil {
		return nil, err
	}

	var item db.Experience
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}

	item.Company = strings.TrimSpace(input.Company)
	item.Role = strings.TrimSpace(input.Role)
	item.Period = strings.TrimSpace(input.Period)
	item.Description = strings.TrimSpace(input.Description)
	item.Technologies = db.StringList(NormalizeStringList(input.Technologies))

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update experience: %w", err)
	}
	return &item, nil
}

// Delete removes an experience entry.
func (s *ExperienceService) Delete(id uint) error {
	var item db.Experience
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExperienceNotFound
		}
		return fmt.Errorf("find experience: %w", err)
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	return nil
}

func validateExperienceInput(input ExperienceInput) error {
	var b validationBuilder
	if strings.TrimSpace(input.Company) == "" {
		b.add("company", "The company field is required.")
	}
	if strings.TrimSpace(input.Role) == "" {
		b.add("role", "The role field is required.")
	}
	if strings.TrimSpace(input.Period) == "" {
		b.add("period", "The period field is required.")
	}
	if strings.TrimSpace(input.Description) == "" {
		b.add("description", "The description field is required.")
	}
	return b.err()
}
