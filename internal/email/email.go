package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"strings"

	"github.com/Domenick1991/happyfares/config"
	"github.com/Domenick1991/happyfares/internal/kafka"
	"gopkg.in/gomail.v2"
)

// Mailer is satisfied by *gomail.Dialer.
type Mailer interface {
	DialAndSend(m ...*gomail.Message) error
}

type Sender struct {
	mailer Mailer
	from   string
}

// NewSender returns a sender that only logs when no SMTP host is configured.
func NewSender(cfg config.SMTPConfig) *Sender {
	s := &Sender{from: formatFrom(cfg.FromName, cfg.User)}
	if cfg.Host != "" {
		s.mailer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return s
}

func NewSenderWithMailer(mailer Mailer, fromName, fromAddr string) *Sender {
	return &Sender{mailer: mailer, from: formatFrom(fromName, fromAddr)}
}

func formatFrom(name, addr string) string {
	return fmt.Sprintf("%q <%s>", name, addr)
}

// Send renders and delivers the notification for a booking event.
func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Email == "" {
		return nil
	}
	subject, body, err := Render(event)
	if err != nil {
		return err
	}
	if subject == "" {
		return nil
	}
	return s.SendEmail(ctx, event.Email, subject, body)
}

func (s *Sender) SendEmail(ctx context.Context, to, subject, html string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.mailer == nil {
		log.Printf("smtp not configured, skip email to %s: %s", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := s.mailer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	log.Printf("email sent to %s: %s", to, subject)
	return nil
}

type templateData struct {
	Event   kafka.BookingEvent
	Details map[string]any
	Title   string
	Intro   string
}

// Render picks the subject and HTML body for an event type. Unknown types
// render nothing.
func Render(event kafka.BookingEvent) (string, string, error) {
	data := templateData{Event: event, Details: map[string]any{}}
	if len(event.Details) > 0 {
		if err := json.Unmarshal(event.Details, &data.Details); err != nil {
			return "", "", fmt.Errorf("decode booking details: %w", err)
		}
	}

	var subject string
	switch event.Type {
	case kafka.EventBookingCreated:
		subject = "Booking Confirmation - HappyFares"
		data.Title = "Booking Confirmation"
		data.Intro = "Thank you for booking with us. Here are your booking details."
	case kafka.EventBookingStatusChanged:
		subject = fmt.Sprintf("Your booking is now %s", event.Status)
		data.Title = "Booking Update"
		data.Intro = fmt.Sprintf("The status of your booking has changed to %s.", event.Status)
	case kafka.EventBookingExpired:
		subject = "Your booking hold has expired"
		data.Title = "Booking Expired"
		data.Intro = "We did not receive a confirmation in time, so this booking has been cancelled."
	default:
		return "", "", nil
	}

	var buf bytes.Buffer
	if err := bookingTemplate.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s email: %w", event.Type, err)
	}
	return subject, buf.String(), nil
}

var bookingTemplate = template.Must(template.New("booking").Funcs(template.FuncMap{
	"detail": func(details map[string]any, key string) string {
		if v, ok := details[key]; ok && v != nil {
			return fmt.Sprint(v)
		}
		return ""
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #0066cc; text-align: center;">{{.Title}}</h1>
  <p>Dear {{.Event.FirstName}} {{.Event.LastName}},</p>
  <p>{{.Intro}}</p>
  <div style="background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <h2 style="color: #333;">Booking Details</h2>
    <p><strong>Booking Reference:</strong> {{.Event.Reference}}</p>
    <p><strong>Status:</strong> {{title .Event.Status}}</p>
    {{- if eq .Event.BookingType "flight"}}
    <div>
      <p><strong>Flight Details:</strong></p>
      <p>From: {{detail .Details "from"}}</p>
      <p>To: {{detail .Details "to"}}</p>
      <p>Date: {{.Event.StartDate}} {{detail .Details "departureTime"}}</p>
      <p>Airline: {{detail .Details "airline"}}</p>
    </div>
    {{- else}}
    <div>
      <p><strong>{{title .Event.BookingType}} Details:</strong></p>
      <p>Name: {{detail .Details "name"}}</p>
      <p>Location: {{detail .Details "location"}}</p>
      <p>Dates: {{.Event.StartDate}} to {{.Event.EndDate}}</p>
    </div>
    {{- end}}
    <p><strong>Total Price:</strong> ${{.Event.TotalPrice}}</p>
  </div>
  <div style="text-align: center; color: #666; font-size: 14px;">
    <p>Thank you for choosing HappyFares!</p>
    <p>If you have any questions, please contact our support team.</p>
  </div>
</div>
`))
