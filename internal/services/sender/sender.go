// Package services отправляет клиентам письма о бронированиях:
// напоминания о завтрашних визитах и уведомления о смене статуса.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/lib/smtp"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// SenderService формирует и отправляет письма через SMTP транспорт.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport smtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendBookingReminder отправляет напоминание о бронировании на завтра.
func (s *SenderService) SendBookingReminder(body []byte) error {
	var message models.ReminderInfo
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := "Reminder: your service appointment is tomorrow"
	bodyText := fmt.Sprintf("Hello, %s!\n\nThis is a reminder about your %s appointment at %s tomorrow, %s at %s.\n\nSee you there!",
		message.ClientName, message.ServiceName, message.StationName,
		message.BookingDate.Format("2006-01-02"), message.BookingTime)

	return s.sendEmail(to, subject, bodyText)
}

// SendBookingStatusUpdate отправляет уведомление о смене статуса бронирования.
func (s *SenderService) SendBookingStatusUpdate(body []byte) error {
	var message models.StatusEvent
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := fmt.Sprintf("Booking #%d status update", message.BookingID)
	bodyText := fmt.Sprintf("Hello, %s!\n\nYour booking for %s at %s (%s %s) is now %s.",
		message.ClientName, message.ServiceName, message.StationName,
		message.BookingDate.Format("2006-01-02"), message.BookingTime, message.NewStatus)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", "from", s.transport.GetSMTPUser(), "error", sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", "recipient", addr, "error", sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	_, err = wc.Write([]byte(msg))
	if err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", "to", to)
	return nil
}
