package booking

import "errors"

var (
	// ErrSlotUnavailable means the capacity or working-hours check failed.
	ErrSlotUnavailable = errors.New("the selected time slot is not available")
	// ErrNotPending means an owner edit was attempted on a booking that
	// has already left the pending state.
	ErrNotPending = errors.New("only pending bookings can be updated")
	// ErrPastBooking means a cancellation was attempted after the
	// scheduled date and time.
	ErrPastBooking = errors.New("cannot cancel past bookings")
	// ErrAlreadyFinished means a cancellation was attempted on a booking
	// in a terminal state.
	ErrAlreadyFinished = errors.New("booking is already finished or cancelled")
	// ErrUnknownStatus means a status outside the five known values.
	ErrUnknownStatus = errors.New("unknown booking status")
)
