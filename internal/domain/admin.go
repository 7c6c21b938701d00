package domain

import "time"

const (
	ActionUpdateBookingStatus = "update_booking_status"
	ActionUpdateEnquiryStatus = "update_enquiry_status"
	ActionUpdateUserRole      = "update_user_role"
	ActionCreateFlight        = "create_flight"
)

// AdminLog records a back office mutation. Details holds a JSON document.
type AdminLog struct {
	ID         int64
	AdminID    int64
	Action     string
	EntityType string
	EntityID   int64
	Details    string
	CreatedAt  time.Time
}

type AdminStats struct {
	TotalUsers     int64  `json:"totalUsers"`
	ActiveBookings int64  `json:"activeBookings"`
	NewEnquiries   int64  `json:"newEnquiries"`
	MonthlyRevenue string `json:"monthlyRevenue"`
}

type AnalyticsOverview struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalBookings   int64   `json:"totalBookings"`
	TotalUsers      int64   `json:"totalUsers"`
	TotalEnquiries  int64   `json:"totalEnquiries"`
	AvgBookingValue float64 `json:"avgBookingValue"`
}

type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type CountPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type BookingStatusBreakdown struct {
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

type AnalyticsTrends struct {
	Revenue       []RevenuePoint         `json:"revenue"`
	UserGrowth    []CountPoint           `json:"userGrowth"`
	BookingStatus BookingStatusBreakdown `json:"bookingStatus"`
	PopularTypes  map[string]int64       `json:"popularTypes"`
}

type Analytics struct {
	Overview AnalyticsOverview `json:"overview"`
	Trends   AnalyticsTrends   `json:"trends"`
}
