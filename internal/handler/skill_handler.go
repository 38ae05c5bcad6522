package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type skillPayload struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency *int   `json:"proficiency"`
}

func (p skillPayload) toInput() service.SkillInput {
	return service.SkillInput{
		Name:        p.Name,
		Category:    p.Category,
		Proficiency: p.Proficiency,
	}
}

// ListSkills returns all skills (public endpoint).
func (a *API) ListSkills(c *gin.Context) {
	items, err := a.skills.List()
	if err != nil {
		a.respondUnexpected(c, err, "failed to list skills")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateSkill creates a new skill.
func (a *API) CreateSkill(c *gin.Context) {
	var payload skillPayload
	if !bindJSON(c, &payload, "invalid skill payload") {
		return
	}

	item, err := a.skills.Create(payload.toInput())
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		a.respondUnexpected(c, err, "failed to create skill")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateSkill updates an existing skill.
func (a *API) UpdateSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid skill id")
		return
	}

	var payload skillPayload
	if !bindJSON(c, &payload, "invalid skill payload") {
		return
	}

	item, err := a.skills.Update(id, payload.toInput())
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		if errors.Is(err, service.ErrSkillNotFound) {
			respondError(c, http.StatusNotFound, "skill not found")
			return
		}
		a.respondUnexpected(c, err, "failed to update skill")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteSkill removes a skill.
func (a *API) DeleteSkill(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid skill id")
		return
	}

	if err := a.skills.Delete(id); err != nil {
		if errors.Is(err, service.ErrSkillNotFound) {
			respondError(c, http.StatusNotFound, "skill not found")
			return
		}
		a.respondUnexpected(c, err, "failed to delete skill")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
