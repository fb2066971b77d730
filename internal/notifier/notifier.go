// Package notifier delivers the side effects of booking transitions:
// notification rows for the counterpart party plus an email log line for
// the booking's owner. Delivery is best-effort; failures are logged and
// never surface to the caller, so they cannot block a state transition.
package notifier

import (
	"fmt"
	"log/slog"

	"tableBooker/internal/lib/logger/sl"
	"tableBooker/internal/models"
)

type Storage interface {
	AdminIDs() ([]int64, error)
	UserByID(id int64) (*models.User, error)
	CreateNotification(userID int64, title, message, notifType string, referenceID int64) error
}

type Notifier struct {
	log     *slog.Logger
	storage Storage
}

func New(log *slog.Logger, storage Storage) *Notifier {
	return &Notifier{log: log, storage: storage}
}

func (n *Notifier) BookingCreated(b *models.Booking) {
	n.notifyAdmins(
		"New booking created",
		"A new booking has been created and requires your attention.",
		b,
	)
	n.emailOwner(b, "booking confirmation")
}

func (n *Notifier) BookingUpdated(b *models.Booking) {
	n.notifyAdmins(
		"Booking updated",
		"A booking has been updated and requires your attention.",
		b,
	)
	n.emailOwner(b, "booking update")
}

func (n *Notifier) BookingCancelled(b *models.Booking) {
	n.notifyAdmins(
		"Booking cancelled",
		"A booking has been cancelled by the user.",
		b,
	)
	n.emailOwner(b, "booking cancellation")
}

func (n *Notifier) StatusChanged(b *models.Booking, oldStatus models.BookingStatus) {
	err := n.storage.CreateNotification(
		b.UserID,
		"Booking status updated",
		fmt.Sprintf("Your booking status has been updated to %s", b.Status),
		"booking",
		b.ID,
	)
	if err != nil {
		n.log.Error("failed to create user notification", sl.Err(err))
	}

	n.emailOwner(b, fmt.Sprintf("status update (%s -> %s)", oldStatus, b.Status))
}

func (n *Notifier) notifyAdmins(title, message string, b *models.Booking) {
	admins, err := n.storage.AdminIDs()
	if err != nil {
		n.log.Error("failed to list admins for notification", sl.Err(err))
		return
	}

	for _, adminID := range admins {
		if err = n.storage.CreateNotification(adminID, title, message, "booking", b.ID); err != nil {
			n.log.Error("failed to create admin notification",
				slog.Int64("admin_id", adminID), sl.Err(err))
		}
	}
}

// emailOwner stands in for a real mailer: the message is logged instead
// of sent, matching the delivery channel this service actually has.
func (n *Notifier) emailOwner(b *models.Booking, kind string) {
	user, err := n.storage.UserByID(b.UserID)
	if err != nil {
		n.log.Error("failed to resolve booking owner for email", sl.Err(err))
		return
	}

	n.log.Info("sending email",
		slog.String("to", user.Email),
		slog.String("kind", kind),
		slog.Int64("booking_id", b.ID),
	)
}
