package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type projectPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TechStack   any     `json:"tech_stack"`
	ImageURL    *string `json:"image_url"`
	DemoLink    *string `json:"demo_link"`
	RepoLink    *string `json:"repo_link"`
}

// ListProjects returns all projects (public endpoint).
func (a *API) ListProjects(c *gin.Context) {
	items, err := a.projects.List()
	if err != nil {
		a.respondUnexpected(c, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateProject creates a new project from a JSON or multipart request.
func (a *API) CreateProject(c *gin.Context) {
	input, ok := a.bindProjectInput(c)
	if !ok {
		return
	}

	item, err := a.projects.Create(input)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		a.respondUnexpected(c, err, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateProject updates an existing project.
//
// 契约：image_url / demo_link / repo_link 三个字段「缺席」与「传空串」含义不同。
// 缺席表示保持原值，空串表示明确清空（本地图片文件会被一并删除）。
func (a *API) UpdateProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	input, ok := a.bindProjectInput(c)
	if !ok {
		return
	}

	item, err := a.projects.Update(id, input)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		a.respondUnexpected(c, err, "failed to update project")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteProject removes a project and its local image file.
func (a *API) DeleteProject(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid project id")
		return
	}

	if err := a.projects.Delete(id); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			respondError(c, http.StatusNotFound, "project not found")
			return
		}
		a.respondUnexpected(c, err, "failed to delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// bindProjectInput 根据请求类型组装 ProjectInput。
// multipart 表单里 image 文件优先于 image_url 字符串。
func (a *API) bindProjectInput(c *gin.Context) (service.ProjectInput, bool) {
	input := service.ProjectInput{BaseURL: requestBaseURL(c)}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") ||
		c.ContentType() == "application/x-www-form-urlencoded" {
		input.Title = c.PostForm("title")
		input.Description = c.PostForm("description")
		if raw, ok := c.GetPostForm("tech_stack"); ok {
			input.TechStack = raw
		}
		input.ImageURL = optionalFormValue(c, "image_url")
		input.DemoLink = optionalFormValue(c, "demo_link")
		input.RepoLink = optionalFormValue(c, "repo_link")
		if file, err := c.FormFile("image"); err == nil {
			input.Image = file
		}
		return input, true
	}

	var payload projectPayload
	if !bindJSON(c, &payload, "invalid project payload") {
		return service.ProjectInput{}, false
	}

	input.Title = payload.Title
	input.Description = payload.Description
	input.TechStack = payload.TechStack
	input.ImageURL = payload.ImageURL
	input.DemoLink = payload.DemoLink
	input.RepoLink = payload.RepoLink
	return input, true
}

// optionalFormValue 区分表单字段缺席（nil）与传了空串（指向空串的指针）
func optionalFormValue(c *gin.Context, key string) *string {
	if value, ok := c.GetPostForm(key); ok {
		return &value
	}
	return nil
}
