package handler

import (
	"github.com/devfolio/internal/service"
	"github.com/devfolio/internal/storage"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db          *gorm.DB
	profiles    *service.ProfileService
	projects    *service.ProjectService
	skills      *service.SkillService
	experiences *service.ExperienceService
	contacts    *service.ContactService
	debug       bool
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, disk *storage.Disk, notifier service.Notifier, debug bool) *API {
	return &API{
		db:          gdb,
		profiles:    service.NewProfileService(gdb, disk),
		projects:    service.NewProjectService(gdb, disk),
		skills:      service.NewSkillService(gdb),
		experiences: service.NewExperienceService(gdb),
		contacts:    service.NewContactService(gdb, notifier),
		debug:       debug,
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
