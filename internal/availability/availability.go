// Package availability answers whether a party fits into the restaurant's
// capacity at a candidate date and time. A booking occupies the half-open
// window [start, start+duration); two windows overlap when each starts
// before the other ends. The engine is a pure read over the booking store:
// callers that need check-and-write atomicity must hold their own lock
// around it (see the booking service).
package availability

import (
	"fmt"
	"time"

	"tableBooker/internal/config"
	"tableBooker/internal/models"
)

// BookingSource supplies the non-cancelled bookings on a date, excluding
// one booking id so an edited booking does not collide with itself
// (0 excludes nothing).
type BookingSource interface {
	ActiveBookingsForDate(date string, excludeID int64) ([]models.Booking, error)
}

type Engine struct {
	source      BookingSource
	opening     int // minutes since midnight
	closing     int
	duration    int
	capacity    int
	granularity int
}

func New(cfg config.Restaurant, source BookingSource) (*Engine, error) {
	opening, err := ParseTimeOfDay(cfg.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time %q: %w", cfg.OpeningTime, err)
	}

	closing, err := ParseTimeOfDay(cfg.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time %q: %w", cfg.ClosingTime, err)
	}

	if closing <= opening {
		return nil, fmt.Errorf("closing time %q is not after opening time %q", cfg.ClosingTime, cfg.OpeningTime)
	}
	if cfg.BookingDuration <= 0 || cfg.MaxCapacity <= 0 || cfg.SlotGranularity <= 0 {
		return nil, fmt.Errorf("booking duration, capacity and slot granularity must be positive")
	}

	return &Engine{
		source:      source,
		opening:     opening,
		closing:     closing,
		duration:    cfg.BookingDuration,
		capacity:    cfg.MaxCapacity,
		granularity: cfg.SlotGranularity,
	}, nil
}

// ParseTimeOfDay converts an "HH:MM" string to minutes since midnight.
func ParseTimeOfDay(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IsSlotAvailable reports whether guests can be seated at the given date
// and time. A start time is admitted only inside working hours,
// opening <= start < closing; a seating may run past closing. The check is
// point-in-time: it holds no lock against concurrent writers.
func (e *Engine) IsSlotAvailable(date, timeOfDay string, guests int, excludeID int64) (bool, error) {
	start, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		return false, fmt.Errorf("invalid time %q: %w", timeOfDay, err)
	}

	if start < e.opening || start >= e.closing {
		return false, nil
	}

	bookings, err := e.source.ActiveBookingsForDate(date, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	end := start + e.duration

	existingLoad := 0
	for _, b := range bookings {
		bStart, err := ParseTimeOfDay(b.Time)
		if err != nil {
			return false, fmt.Errorf("stored booking %d has invalid time %q: %w", b.ID, b.Time, err)
		}

		// half-open interval overlap
		if bStart < end && start < bStart+e.duration {
			existingLoad += b.Guests
		}
	}

	return existingLoad+guests <= e.capacity, nil
}

// ListSlots enumerates every candidate start time on the date, from
// opening up to (not including) closing, stepped by the slot granularity,
// each checked independently for the given party size.
func (e *Engine) ListSlots(date string, guests int) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot

	for start := e.opening; start < e.closing; start += e.granularity {
		timeOfDay := formatTimeOfDay(start)

		available, err := e.IsSlotAvailable(date, timeOfDay, guests, 0)
		if err != nil {
			return nil, err
		}

		slots = append(slots, models.TimeSlot{
			Time:      timeOfDay,
			Available: available,
		})
	}

	return slots, nil
}
