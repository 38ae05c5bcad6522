package handler

import (
	"net/http"
	"strings"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

// GetProfile returns the profile singleton (public endpoint).
// short_bio 以 Markdown 书写，响应里附带消毒后的 short_bio_html。
func (a *API) GetProfile(c *gin.Context) {
	profile, err := a.profiles.Get()
	if err != nil {
		if err == service.ErrProfileNotFound {
			respondError(c, http.StatusNotFound, "Profile not found")
			return
		}
		a.respondUnexpected(c, err, "failed to load profile")
		return
	}

	bioHTML := ""
	if profile.ShortBio != nil {
		bioHTML = renderMarkdown(*profile.ShortBio)
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             profile.ID,
		"name":           profile.Name,
		"headline":       profile.Headline,
		"sub_headline":   profile.SubHeadline,
		"short_bio":      profile.ShortBio,
		"short_bio_html": bioHTML,
		"avatar_url":     profile.AvatarURL,
		"resume_url":     profile.ResumeURL,
		"linkedin":       profile.Linkedin,
		"github":         profile.Github,
		"status_text":    profile.StatusText,
		"created_at":     profile.CreatedAt,
		"updated_at":     profile.UpdatedAt,
	})
}

// UpdateProfile upserts the profile singleton from a multipart form.
// delete_avatar / delete_resume 为字符串布尔值，置真时清除对应文件。
func (a *API) UpdateProfile(c *gin.Context) {
	input := service.ProfileInput{
		Name:         c.PostForm("name"),
		Headline:     c.PostForm("headline"),
		SubHeadline:  optionalFormValue(c, "sub_headline"),
		ShortBio:     optionalFormValue(c, "short_bio"),
		Linkedin:     optionalFormValue(c, "linkedin"),
		Github:       optionalFormValue(c, "github"),
		StatusText:   optionalFormValue(c, "status_text"),
		DeleteAvatar: parseBoolField(c.PostForm("delete_avatar")),
		DeleteResume: parseBoolField(c.PostForm("delete_resume")),
	}

	if file, err := c.FormFile("avatar"); err == nil {
		input.Avatar = file
	}
	if file, err := c.FormFile("resume"); err == nil {
		input.Resume = file
	}

	profile, err := a.profiles.Upsert(input)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		a.respondUnexpected(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func parseBoolField(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	default:
		return false
	}
}
