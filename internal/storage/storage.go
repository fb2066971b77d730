package storage

import (
	"errors"

	"tableBooker/internal/models"
)

var (
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrCategoryNotFound     = errors.New("menu category not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// BookingFilter narrows admin booking listings; zero values mean "no filter".
type BookingFilter struct {
	Status models.BookingStatus
	Date   string
	UserID int64
}

// MenuFilter narrows menu listings; nil / zero values mean "no filter".
type MenuFilter struct {
	CategoryID int64
	Available  *bool
	Featured   *bool
	Search     string
}
