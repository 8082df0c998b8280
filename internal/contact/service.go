package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"realestate-listings/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrInvalidMessage wraps validation failures of a contact request.
	ErrInvalidMessage = errors.New("invalid contact message")
	// ErrUnknownProperty is returned when propertyId names no listing.
	ErrUnknownProperty = errors.New("unknown property")
)

// Request is the body of POST /api/contact.
type Request struct {
	PropertyID string `json:"propertyId" validate:"omitempty,max=64"`
	Name       string `json:"name" validate:"required,max=200"`
	Email      string `json:"email" validate:"required,email,max=254"`
	Phone      string `json:"phone" validate:"omitempty,max=40"`
	Message    string `json:"message" validate:"required,max=5000"`
}

func (r *Request) normalize() {
	r.PropertyID = strings.TrimSpace(r.PropertyID)
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Message = strings.TrimSpace(r.Message)
}

// PropertyLookup is the part of the property store the service needs.
type PropertyLookup interface {
	Get(ctx context.Context, id string) (*models.Property, error)
}

// Service validates enquiries and queues them for delivery. It never
// modifies listings.
type Service struct {
	properties PropertyLookup
	dispatcher *Dispatcher
	now        func() time.Time
}

func NewService(properties PropertyLookup, dispatcher *Dispatcher) *Service {
	return &Service{
		properties: properties,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Submit validates req and enqueues it. Errors wrap ErrInvalidMessage,
// ErrUnknownProperty, ErrQueueFull or ErrDispatcherStopped; anything else
// comes from the property lookup.
func (s *Service) Submit(ctx context.Context, req Request) (models.ContactMessage, error) {
	req.normalize()
	if err := models.ValidateStruct(req); err != nil {
		return models.ContactMessage{}, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	if req.PropertyID != "" {
		property, err := s.properties.Get(ctx, req.PropertyID)
		if err != nil {
			return models.ContactMessage{}, fmt.Errorf("lookup property %s: %w", req.PropertyID, err)
		}
		if property == nil {
			return models.ContactMessage{}, fmt.Errorf("%w: %s", ErrUnknownProperty, req.PropertyID)
		}
	}

	msg := models.ContactMessage{
		ID:         uuid.NewString(),
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		ReceivedAt: s.now(),
	}
	if err := s.dispatcher.Enqueue(msg); err != nil {
		return models.ContactMessage{}, err
	}
	return msg, nil
}

// Stats exposes the dispatcher counters.
func (s *Service) Stats() Stats {
	return s.dispatcher.GetStats()
}
