package handlers

import (
	"errors"
	"net/http"

	"realestate-listings/internal/contact"

	"github.com/gin-gonic/gin"
)

// ContactHandler accepts enquiries from the contact form.
type ContactHandler struct {
	service *contact.Service
}

func NewContactHandler(service *contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit validates the enquiry and queues it for delivery.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgInvalidContact, err)
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"id": msg.ID, "status": "queued"})
	case errors.Is(err, contact.ErrInvalidMessage):
		respondError(c, http.StatusBadRequest, msgInvalidContact, err)
	case errors.Is(err, contact.ErrUnknownProperty):
		respondError(c, http.StatusNotFound, msgPropertyNotFound, err)
	case errors.Is(err, contact.ErrQueueFull), errors.Is(err, contact.ErrDispatcherStopped):
		respondError(c, http.StatusServiceUnavailable, msgContactUnavailable, err)
	default:
		respondError(c, http.StatusInternalServerError, msgContactFailed, err)
	}
}
