package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"tableBooker/internal/config"
	"tableBooker/internal/models"
	"tableBooker/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return s, nil
}

func (s *Storage) bootstrap() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL UNIQUE,
			phone VARCHAR(32) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'user',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now())`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			date DATE NOT NULL,
			time CHAR(5) NOT NULL,
			guests INT NOT NULL,
			special_requests TEXT NOT NULL DEFAULT '',
			status VARCHAR(16) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now())`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id)`,
		`CREATE TABLE IF NOT EXISTS menu_categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL UNIQUE,
			display_order INT NOT NULL DEFAULT 0)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10,2) NOT NULL,
			category_id BIGINT NOT NULL REFERENCES menu_categories(id),
			available BOOLEAN NOT NULL DEFAULT true,
			featured BOOLEAN NOT NULL DEFAULT false,
			image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now())`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id),
			title VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			type VARCHAR(32) NOT NULL DEFAULT 'booking',
			reference_id BIGINT NOT NULL DEFAULT 0,
			is_read BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now())`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id)`,
		`INSERT INTO menu_categories (name, display_order)
			VALUES ('Starters', 1), ('Mains', 2), ('Desserts', 3), ('Drinks', 4)
			ON CONFLICT (name) DO NOTHING`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// ----- users -----

func (s *Storage) CreateUser(name, email, phone, passwordHash, role string) (int64, error) {
	query := `
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, name, email, phone, passwordHash, role).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, storage.ErrUserExists
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	return id, nil
}

func (s *Storage) UserByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, role, created_at
		FROM users
		WHERE email = $1`

	var user models.User
	err := s.DB.QueryRow(query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) UserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, phone, password_hash, role, created_at
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) AdminIDs() ([]int64, error) {
	rows, err := s.DB.Query(`SELECT id FROM users WHERE role = 'admin'`)
	if err != nil {
		return nil, fmt.Errorf("failed to get admins: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan admin id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating admins: %w", err)
	}

	return ids, nil
}

// ----- bookings -----

const bookingColumns = `id, user_id, to_char(date, 'YYYY-MM-DD'), time, guests, special_requests, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }) (*models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Date,
		&b.Time,
		&b.Guests,
		&b.SpecialRequests,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Storage) CreateBooking(userID int64, date, timeOfDay string, guests int, specialRequests string) (int64, error) {
	query := `
		INSERT INTO bookings (user_id, date, time, guests, special_requests, status)
		VALUES ($1, $2, $3, $4, $5, 'pending')
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query, userID, date, timeOfDay, guests, specialRequests).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (s *Storage) BookingByID(id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBooking(s.DB.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return b, nil
}

func (s *Storage) UpdateBookingDetails(id int64, date, timeOfDay string, guests int, specialRequests string) error {
	query := `
		UPDATE bookings
		SET date = $2, time = $3, guests = $4, special_requests = $5, updated_at = now()
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, date, timeOfDay, guests, specialRequests)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

func (s *Storage) UpdateBookingStatus(id int64, status models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1`

	result, err := s.DB.Exec(query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// ActiveBookingsForDate returns every non-cancelled booking on the given
// date, optionally excluding one booking id (0 excludes nothing). This is
// the read the availability engine sums occupancy over.
func (s *Storage) ActiveBookingsForDate(date string, excludeID int64) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1 AND status != 'cancelled' AND id != $2
		ORDER BY time ASC`

	rows, err := s.DB.Query(query, date, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings for date: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (s *Storage) BookingsByUser(userID int64) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY date DESC, time DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (s *Storage) AllBookings(filter storage.BookingFilter) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`

	var args []interface{}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		query += fmt.Sprintf(" AND date = $%d", len(args))
	}
	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		query += fmt.Sprintf(" AND user_id = $%d", len(args))
	}

	query += " ORDER BY date DESC, time DESC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (s *Storage) BookingsOnDate(date string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1
		ORDER BY time ASC`

	rows, err := s.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings for date: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (s *Storage) BookingsBetween(startDate, endDate string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date BETWEEN $1 AND $2
		ORDER BY date ASC, time ASC`

	rows, err := s.DB.Query(query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings in range: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

// ----- menu -----

const menuItemColumns = `m.id, m.name, m.description, m.price, m.category_id, c.name, m.available, m.featured, m.image_url, m.created_at`

func (s *Storage) MenuItems(filter storage.MenuFilter) ([]models.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items m
		JOIN menu_categories c ON c.id = m.category_id
		WHERE 1=1`

	var args []interface{}
	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(" AND m.category_id = $%d", len(args))
	}
	if filter.Available != nil {
		args = append(args, *filter.Available)
		query += fmt.Sprintf(" AND m.available = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		query += fmt.Sprintf(" AND m.featured = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND m.name ILIKE $%d", len(args))
	}

	query += " ORDER BY c.display_order ASC, m.name ASC"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.CategoryID,
			&item.Category,
			&item.Available,
			&item.Featured,
			&item.ImageURL,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

func (s *Storage) MenuItemByID(id int64) (*models.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items m
		JOIN menu_categories c ON c.id = m.category_id
		WHERE m.id = $1`

	var item models.MenuItem
	err := s.DB.QueryRow(query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.CategoryID,
		&item.Category,
		&item.Available,
		&item.Featured,
		&item.ImageURL,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	return &item, nil
}

func (s *Storage) CreateMenuItem(item *models.MenuItem) (int64, error) {
	query := `
		INSERT INTO menu_items (name, description, price, category_id, available, featured, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := s.DB.QueryRow(query,
		item.Name,
		item.Description,
		item.Price,
		item.CategoryID,
		item.Available,
		item.Featured,
		item.ImageURL,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return 0, storage.ErrCategoryNotFound
		}
		return 0, fmt.Errorf("failed to create menu item: %w", err)
	}

	return id, nil
}

func (s *Storage) UpdateMenuItem(item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, category_id = $5,
		    available = $6, featured = $7, image_url = $8
		WHERE id = $1`

	result, err := s.DB.Exec(query,
		item.ID,
		item.Name,
		item.Description,
		item.Price,
		item.CategoryID,
		item.Available,
		item.Featured,
		item.ImageURL,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return storage.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return storage.ErrMenuItemNotFound
	}

	return nil
}

func (s *Storage) DeleteMenuItem(id int64) error {
	result, err := s.DB.Exec(`DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return storage.ErrMenuItemNotFound
	}

	return nil
}

func (s *Storage) MenuCategories() ([]models.MenuCategory, error) {
	query := `
		SELECT id, name, display_order
		FROM menu_categories
		ORDER BY display_order ASC`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []models.MenuCategory
	for rows.Next() {
		var c models.MenuCategory
		if err = rows.Scan(&c.ID, &c.Name, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// ----- notifications -----

func (s *Storage) CreateNotification(userID int64, title, message, notifType string, referenceID int64) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, reference_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := s.DB.Exec(query, userID, title, message, notifType, referenceID)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *Storage) NotificationsByUser(userID int64) ([]models.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, reference_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var n models.Notification
		err = rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Type,
			&n.ReferenceID,
			&n.IsRead,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

func (s *Storage) UnreadNotificationCount(userID int64) (int, error) {
	var count int
	err := s.DB.QueryRow(
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *Storage) MarkNotificationRead(id, userID int64) error {
	result, err := s.DB.Exec(
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return storage.ErrNotificationNotFound
	}

	return nil
}

func (s *Storage) MarkAllNotificationsRead(userID int64) (int64, error) {
	result, err := s.DB.Exec(
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`,
		userID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()

	return rowsAffected, nil
}
