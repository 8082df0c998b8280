package models

import "time"

// ContactMessage is an enquiry sent through the contact form.
type ContactMessage struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"propertyId,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}
