package contact

import (
	"context"

	"realestate-listings/internal/logger"
	"realestate-listings/internal/models"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes each enquiry to the application log. Nothing is stored.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, msg models.ContactMessage) error {
	logger.Log.WithFields(logrus.Fields{
		"message_id":  msg.ID,
		"property_id": msg.PropertyID,
		"name":        msg.Name,
		"email":       msg.Email,
		"received_at": msg.ReceivedAt,
	}).Info("Contact enquiry received")
	return nil
}
