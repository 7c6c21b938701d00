package database

import "time"

// Table models owned by the migrator. Runtime queries go through pgx in
// internal/repository and must stay in sync with these column names.

type User struct {
	ID        int64     `gorm:"primaryKey"`
	Username  string    `gorm:"type:text;not null;uniqueIndex"`
	Password  string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null"`
	IsAdmin   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (User) TableName() string { return "users" }

type Booking struct {
	ID         int64     `gorm:"primaryKey"`
	UserID     *int64    `gorm:"index"`
	User       *User     `gorm:"constraint:OnDelete:SET NULL"`
	Reference  string    `gorm:"type:text;not null;uniqueIndex"`
	Type       string    `gorm:"type:text;not null;index"`
	ItemID     int64     `gorm:"not null"`
	StartDate  string    `gorm:"type:text;not null"`
	EndDate    string    `gorm:"type:text;not null"`
	TotalPrice string    `gorm:"type:text;not null"`
	Status     string    `gorm:"type:text;not null;index"`
	Details    string    `gorm:"type:text;not null"`
	FirstName  string    `gorm:"type:text;not null"`
	LastName   string    `gorm:"type:text;not null"`
	Email      string    `gorm:"type:text;not null"`
	Phone      string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Booking) TableName() string { return "bookings" }

type Enquiry struct {
	ID        int64     `gorm:"primaryKey"`
	Name      string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:text;not null;default:'new';index"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Enquiry) TableName() string { return "enquiries" }

type Flight struct {
	ID            int64     `gorm:"primaryKey"`
	From          string    `gorm:"column:from_city;type:text;not null;index"`
	To            string    `gorm:"column:to_city;type:text;not null;index"`
	DepartureTime string    `gorm:"type:text;not null"`
	ArrivalTime   string    `gorm:"type:text;not null"`
	Airline       string    `gorm:"type:text;not null"`
	Price         int64     `gorm:"not null"`
	Duration      string    `gorm:"type:text;not null"`
	Stops         int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Flight) TableName() string { return "flights" }

type AdminLog struct {
	ID         int64     `gorm:"primaryKey"`
	AdminID    int64     `gorm:"not null;index"`
	Admin      *User     `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
	Action     string    `gorm:"type:text;not null"`
	EntityType string    `gorm:"type:text;not null"`
	EntityID   int64     `gorm:"not null"`
	Details    string    `gorm:"type:text;not null;default:'{}'"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index"`
}

func (AdminLog) TableName() string { return "admin_logs" }
