package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type experiencePayload struct {
	Company      string `json:"company"`
	Role         string `json:"role"`
	Period       string `json:"period"`
	Description  string `json:"description"`
	Technologies any    `json:"technologies"`
}

func (p experiencePayload) toInput() service.ExperienceInput {
	return service.ExperienceInput{
		Company:      p.Company,
		Role:         p.Role,
		Period:       p.Period,
		Description:  p.Description,
		Technologies: p.Technologies,
	}
}

// ListExperiences returns all experiences (public endpoint).
func (a *API) ListExperiences(c *gin.Context) {
	items, err := a.experiences.List()
	if err != nil {
		a.respondUnexpected(c, err, "failed to list experiences")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateExperience creates a new experience entry.
func (a *API) CreateExperience(c *gin.Context) {
	var payload experiencePayload
	if !bindJSON(c, &payload, "invalid experience payload") {
		return
	}

	item, err := a.experiences.Create(payload.toInput())
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		a.respondUnexpected(c, err, "failed to create experience")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateExperience updates an existing experience entry.
func (a *API) UpdateExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid experience id")
		return
	}

	var payload experiencePayload
	if !bindJSON(c, &payload, "invalid experience payload") {
		return
	}

	item, err := a.experiences.Update(id, payload.toInput())
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		if errors.Is(err, service.ErrExperienceNotFound) {
			respondError(c, http.StatusNotFound, "experience not found")
			return
		}
		a.respondUnexpected(c, err, "failed to update experience")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteExperience removes an experience entry.
func (a *API) DeleteExperience(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid experience id")
		return
	}

	if err := a.experiences.Delete(id); err != nil {
		if errors.Is(err, service.ErrExperienceNotFound) {
			respondError(c, http.StatusNotFound, "experience not found")
			return
		}
		a.respondUnexpected(c, err, "failed to delete experience")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}
