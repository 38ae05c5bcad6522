package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/devfolio/internal/db"
	"gorm.io/gorm"
)

// SkillService handles skill CRUD.
type SkillService struct {
	db *gorm.DB
}

// NewSkillService creates a SkillService instance.
func NewSkillService(gdb *gorm.DB) *SkillService {
	return &SkillService{db: gdb}
}

// SkillInput represents fields accepted when creating or updating a skill.
type SkillInput struct {
	Name        string
	Category    string
	Proficiency *int
}

// List returns all skills.
func (s *SkillService) List() ([]db.Skill, error) {
	var items []db.Skill
	if err := s.db.Order("category asc, name asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return items, nil
}

// Create inserts a new skill.
func (s *SkillService) Create(input SkillInput) (*db.Skill, error) {
	if err := validateSkillInput(input); err != nil {
		return nil, err
	}

	item := db.Skill{
		Name:        strings.TrimSpace(input.Name),
		Category:    strings.TrimSpace(input.Category),
		Proficiency: input.Proficiency,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return &item, nil
}

// Update modifies an existing skill.
func (s *SkillService) Update(id uint, input SkillInput) (*db.Skill, error) {
	if err := validateSkillInput(input); err != nil {
		return nil, err
	}

	var item db.Skill
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Category = strings.TrimSpace(input.Category)
	item.Proficiency = input.Proficiency

	if err := s.db.Save(&item).Error; err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return &item, nil
}

// Delete removes a skill.
func (s *SkillService) Delete(id uint) error {
	var item db.Skill
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSkillNotFound
		}
		return fmt.Errorf("find skill: %w", err)
	}
	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

func validateSkillInput(input SkillInput) error {
	var b validationBuilder
	if strings.TrimSpace(input.Name) == "" {
		b.add("name", "The name field is required.")
	}
	if strings.TrimSpace(input.Category) == "" {
		b.add("category", "The category field is required.")
	}
	if input.Proficiency != nil && (*input.Proficiency < 0 || *input.Proficiency > 100) {
		b.add("proficiency", "The proficiency must be between 0 and 100.")
	}
	return b.err()
}
