package api

import (
	"encoding/json"
	"time"

	"github.com/Domenick1991/happyfares/internal/domain"
)

type userResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin, CreatedAt: u.CreatedAt}
}

type bookingResponse struct {
	ID         int64           `json:"id"`
	UserID     *int64          `json:"userId"`
	Reference  string          `json:"reference"`
	Type       string          `json:"type"`
	ItemID     int64           `json:"itemId"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	TotalPrice string          `json:"totalPrice"`
	Status     string          `json:"status"`
	Details    json.RawMessage `json:"details"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	details := json.RawMessage("null")
	if json.Valid([]byte(b.Details)) {
		details = json.RawMessage(b.Details)
	}
	return bookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		Reference:  b.Reference,
		Type:       string(b.Type),
		ItemID:     b.ItemID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		Details:    details,
		FirstName:  b.FirstName,
		LastName:   b.LastName,
		Email:      b.Email,
		Phone:      b.Phone,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

type enquiryResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toEnquiryResponse(e *domain.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Message:   e.Message,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type flightResponse struct {
	ID            int64  `json:"id"`
	From          string `json:"from"`
	To            string `json:"to"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Airline       string `json:"airline"`
	Price         int64  `json:"price"`
	Duration      string `json:"duration"`
	Stops         int    `json:"stops"`
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:            f.ID,
		From:          f.From,
		To:            f.To,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Airline:       f.Airline,
		Price:         f.Price,
		Duration:      f.Duration,
		Stops:         f.Stops,
	}
}

type adminLogResponse struct {
	ID         int64           `json:"id"`
	AdminID    int64           `json:"adminId"`
	Action     string          `json:"action"`
	EntityType string          `json:"entityType"`
	EntityID   int64           `json:"entityId"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func toAdminLogResponse(l *domain.AdminLog) adminLogResponse {
	details := json.RawMessage("null")
	if json.Valid([]byte(l.Details)) {
		details = json.RawMessage(l.Details)
	}
	return adminLogResponse{
		ID:         l.ID,
		AdminID:    l.AdminID,
		Action:     l.Action,
		EntityType: l.EntityType,
		EntityID:   l.EntityID,
		Details:    details,
		CreatedAt:  l.CreatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
