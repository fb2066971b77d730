// Package booking owns the reservation lifecycle: it is the only writer
// of booking rows and of status transitions. Admission (create, and edits
// that change date, time or guests) runs under a per-date lock so the
// availability check and the write happen as one unit; without it two
// concurrent requests could both pass the check and overshoot capacity.
package booking

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tableBooker/internal/models"
	"tableBooker/internal/storage"
)

type Storage interface {
	CreateBooking(userID int64, date, timeOfDay string, guests int, specialRequests string) (int64, error)
	BookingByID(id int64) (*models.Booking, error)
	UpdateBookingDetails(id int64, date, timeOfDay string, guests int, specialRequests string) error
	UpdateBookingStatus(id int64, status models.BookingStatus) error
}

type AvailabilityChecker interface {
	IsSlotAvailable(date, timeOfDay string, guests int, excludeID int64) (bool, error)
}

// Notifier receives one event per accepted transition. Implementations
// are best-effort: they log their own failures and never return them, so
// a broken sink cannot roll back a transition.
type Notifier interface {
	BookingCreated(b *models.Booking)
	BookingUpdated(b *models.Booking)
	BookingCancelled(b *models.Booking)
	StatusChanged(b *models.Booking, oldStatus models.BookingStatus)
}

type Service struct {
	log      *slog.Logger
	storage  Storage
	checker  AvailabilityChecker
	notifier Notifier
	now      func() time.Time

	mu        sync.Mutex
	dateLocks map[string]*sync.Mutex
}

func NewService(log *slog.Logger, st Storage, checker AvailabilityChecker, notifier Notifier) *Service {
	return &Service{
		log:       log,
		storage:   st,
		checker:   checker,
		notifier:  notifier,
		now:       time.Now,
		dateLocks: make(map[string]*sync.Mutex),
	}
}

// dateLock returns the admission lock for a calendar date. Locks are
// never evicted; the map grows by one pointer per distinct booked date.
func (s *Service) dateLock(date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.dateLocks[date]
	if !ok {
		l = &sync.Mutex{}
		s.dateLocks[date] = l
	}

	return l
}

// Create admits a new reservation in the pending state.
func (s *Service) Create(userID int64, date, timeOfDay string, guests int, specialRequests string) (*models.Booking, error) {
	lock := s.dateLock(date)
	lock.Lock()

	ok, err := s.checker.IsSlotAvailable(date, timeOfDay, guests, 0)
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("availability check failed: %w", err)
	}
	if !ok {
		lock.Unlock()
		return nil, ErrSlotUnavailable
	}

	id, err := s.storage.CreateBooking(userID, date, timeOfDay, guests, specialRequests)
	lock.Unlock()
	if err != nil {
		return nil, err
	}

	b, err := s.storage.BookingByID(id)
	if err != nil {
		return nil, err
	}

	s.notifier.BookingCreated(b)

	return b, nil
}

// Update holds the fields an owner may change while a booking is pending.
// Nil pointers leave the current value in place.
type Update struct {
	Date            *string
	Time            *string
	Guests          *int
	SpecialRequests *string
}

// UpdateBooking applies an owner edit. If date, time or guests change the
// new slot is re-checked with the booking excluded from its own overlap
// sum, under the target date's admission lock.
func (s *Service) UpdateBooking(userID, id int64, upd Update) (*models.Booking, error) {
	b, err := s.ownedBooking(userID, id)
	if err != nil {
		return nil, err
	}

	if b.Status != models.StatusPending {
		return nil, ErrNotPending
	}

	date := b.Date
	timeOfDay := b.Time
	guests := b.Guests
	specialRequests := b.SpecialRequests

	if upd.Date != nil {
		date = *upd.Date
	}
	if upd.Time != nil {
		timeOfDay = *upd.Time
	}
	if upd.Guests != nil {
		guests = *upd.Guests
	}
	if upd.SpecialRequests != nil {
		specialRequests = *upd.SpecialRequests
	}

	slotChanged := date != b.Date || timeOfDay != b.Time || guests != b.Guests

	if slotChanged {
		lock := s.dateLock(date)
		lock.Lock()

		ok, err := s.checker.IsSlotAvailable(date, timeOfDay, guests, id)
		if err != nil {
			lock.Unlock()
			return nil, fmt.Errorf("availability check failed: %w", err)
		}
		if !ok {
			lock.Unlock()
			return nil, ErrSlotUnavailable
		}

		err = s.storage.UpdateBookingDetails(id, date, timeOfDay, guests, specialRequests)
		lock.Unlock()
		if err != nil {
			return nil, err
		}
	} else {
		if err = s.storage.UpdateBookingDetails(id, date, timeOfDay, guests, specialRequests); err != nil {
			return nil, err
		}
	}

	b, err = s.storage.BookingByID(id)
	if err != nil {
		return nil, err
	}

	s.notifier.BookingUpdated(b)

	return b, nil
}

// Cancel is the owner-initiated transition to cancelled. It is rejected
// once the scheduled date and time have passed, and for bookings already
// in a terminal state.
func (s *Service) Cancel(userID, id int64) (*models.Booking, error) {
	b, err := s.ownedBooking(userID, id)
	if err != nil {
		return nil, err
	}

	switch b.Status {
	case models.StatusCancelled, models.StatusCompleted, models.StatusRejected:
		return nil, ErrAlreadyFinished
	}

	scheduled, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, time.Local)
	if err != nil {
		return nil, fmt.Errorf("stored booking %d has invalid schedule: %w", id, err)
	}

	if !s.now().Before(scheduled) {
		return nil, ErrPastBooking
	}

	if err = s.storage.UpdateBookingStatus(id, models.StatusCancelled); err != nil {
		return nil, err
	}

	b.Status = models.StatusCancelled

	s.notifier.BookingCancelled(b)

	return b, nil
}

// SetStatus is the admin-driven transition. It accepts any of the five
// known statuses and performs no availability re-check: the admin
// override is allowed to overbook.
func (s *Service) SetStatus(id int64, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, ErrUnknownStatus
	}

	b, err := s.storage.BookingByID(id)
	if err != nil {
		return nil, err
	}

	oldStatus := b.Status

	if err = s.storage.UpdateBookingStatus(id, status); err != nil {
		return nil, err
	}

	b.Status = status

	s.notifier.StatusChanged(b, oldStatus)

	return b, nil
}

func (s *Service) ownedBooking(userID, id int64) (*models.Booking, error) {
	b, err := s.storage.BookingByID(id)
	if err != nil {
		return nil, err
	}

	// Another user's booking is indistinguishable from a missing one.
	if b.UserID != userID {
		return nil, storage.ErrBookingNotFound
	}

	return b, nil
}
