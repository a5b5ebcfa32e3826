package repository

import (
	"context"
	"fmt"

	"github.com/OmKardile/online-car-service-station/internal/models"
)

// CreateBooking вставляет новую запись бронирования одним запросом,
// включая зафиксированную цену и текст квитанции, и возвращает созданную строку.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	const op = "storage.CreateBooking"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO bookings (client_id, service_id, service_station_id,
				  booking_date, booking_time, final_price, status,
				  special_instructions, quotation_text)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, created_at`
	result := booking
	err := s.DB.QueryRowContext(ctx, query,
		booking.ClientID, booking.ServiceID, booking.ServiceStationID,
		booking.BookingDate, booking.BookingTime, booking.FinalPrice,
		booking.Status, booking.SpecialInstructions, booking.QuotationText).
		Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListUserBookings возвращает бронирования клиента с названиями услуги
// и станции, новые первыми.
func (s *Storage) ListUserBookings(ctx context.Context, clientID int) ([]*models.Booking, error) {
	const op = "storage.ListUserBookings"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT b.id, b.client_id, b.service_id, b.service_station_id,
				  b.booking_date, b.booking_time, b.final_price, b.status,
				  b.special_instructions, b.quotation_text, b.created_at,
				  s.name, ss.name
			  FROM bookings b
			  JOIN services s ON b.service_id = s.id
			  JOIN service_stations ss ON b.service_station_id = ss.id
			  WHERE b.client_id = $1
			  ORDER BY b.created_at DESC, b.id DESC`
	rows, err := s.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Booking
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(&item.ID, &item.ClientID, &item.ServiceID, &item.ServiceStationID,
			&item.BookingDate, &item.BookingTime, &item.FinalPrice, &item.Status,
			&item.SpecialInstructions, &item.QuotationText, &item.CreatedAt,
			&item.ServiceName, &item.StationName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetBooking возвращает бронирование по ID.
// Возвращает обёрнутый sql.ErrNoRows, если запись не найдена.
func (s *Storage) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	const op = "storage.GetBooking"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, client_id, service_id, service_station_id, booking_date,
				  booking_time, final_price, status, special_instructions,
				  quotation_text, created_at
			  FROM bookings WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Booking
	if err := row.Scan(&result.ID, &result.ClientID, &result.ServiceID,
		&result.ServiceStationID, &result.BookingDate, &result.BookingTime,
		&result.FinalPrice, &result.Status, &result.SpecialInstructions,
		&result.QuotationText, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateBookingStatus перезаписывает статус бронирования и возвращает
// обновлённую строку. Возвращает обёрнутый sql.ErrNoRows, если запись не найдена.
func (s *Storage) UpdateBookingStatus(ctx context.Context, id int, status string) (*models.Booking, error) {
	const op = "storage.UpdateBookingStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE bookings SET status = $1 WHERE id = $2
			  RETURNING id, client_id, service_id, service_station_id, booking_date,
				  booking_time, final_price, status, special_instructions,
				  quotation_text, created_at`
	row := s.DB.QueryRowContext(ctx, query, status, id)

	var result models.Booking
	if err := row.Scan(&result.ID, &result.ClientID, &result.ServiceID,
		&result.ServiceStationID, &result.BookingDate, &result.BookingTime,
		&result.FinalPrice, &result.Status, &result.SpecialInstructions,
		&result.QuotationText, &result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetBookingNotificationInfo собирает данные бронирования для письма клиенту:
// контакты клиента и названия услуги и станции.
func (s *Storage) GetBookingNotificationInfo(ctx context.Context, id int) (*models.StatusEvent, error) {
	const op = "storage.GetBookingNotificationInfo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT b.id, u.email, u.name, s.name, ss.name, b.status,
				  b.booking_date, b.booking_time
			  FROM bookings b
			  JOIN users u ON b.client_id = u.id
			  JOIN services s ON b.service_id = s.id
			  JOIN service_stations ss ON b.service_station_id = ss.id
			  WHERE b.id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.StatusEvent
	if err := row.Scan(&result.BookingID, &result.Email, &result.ClientName,
		&result.ServiceName, &result.StationName, &result.NewStatus,
		&result.BookingDate, &result.BookingTime); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// FindBookingsDueTomorrow возвращает активные бронирования на завтра
// с контактами клиента для напоминаний.
func (s *Storage) FindBookingsDueTomorrow(ctx context.Context) ([]*models.ReminderInfo, error) {
	const op = "storage.FindBookingsDueTomorrow"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.email, u.name, s.name, ss.name, b.booking_date, b.booking_time
			  FROM bookings b
			  JOIN users u ON b.client_id = u.id
			  JOIN services s ON b.service_id = s.id
			  JOIN service_stations ss ON b.service_station_id = ss.id
			  WHERE b.booking_date = CURRENT_DATE + INTERVAL '1 day'
				  AND b.status IN ('pending', 'confirmed')`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.ReminderInfo
	for rows.Next() {
		var item models.ReminderInfo
		if err := rows.Scan(&item.Email, &item.ClientName, &item.ServiceName,
			&item.StationName, &item.BookingDate, &item.BookingTime); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
