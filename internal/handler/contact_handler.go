package handler

import (
	"errors"
	"net/http"

	"github.com/devfolio/internal/service"
	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// SubmitContact handles the public contact form.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "invalid contact payload") {
		return
	}

	_, err := a.contacts.Submit(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Message: payload.Message,
	})
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			respondValidationError(c, verr)
			return
		}
		a.respondUnexpected(c, err, "failed to submit message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message! We will get back to you soon.",
	})
}

// ListMessages returns all contact messages, latest first (admin only).
func (a *API) ListMessages(c *gin.Context) {
	items, err := a.contacts.List()
	if err != nil {
		a.respondUnexpected(c, err, "failed to list messages")
		return
	}
	c.JSON(http.StatusOK, items)
}

// DeleteMessage removes a contact message (admin only).
func (a *API) DeleteMessage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := a.contacts.Delete(id); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			respondError(c, http.StatusNotFound, "message not found")
			return
		}
		a.respondUnexpected(c, err, "failed to delete message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}
