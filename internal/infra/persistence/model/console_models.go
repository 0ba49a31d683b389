// Package model contains the GORM persistence models mirroring the console
// tables. Mapping to and from domain entities happens at the repository
// boundary; nothing above it sees these types.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	DisplayName  string    `gorm:"type:varchar(100);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// OrderModel mirrors the 'orders' table. Line items are stored as a JSON
// document; the console never queries into them.
type OrderModel struct {
	ID           string `gorm:"type:varchar(20);primary_key"`
	CustomerName string `gorm:"type:varchar(100);not null"`
	Items        string `gorm:"type:jsonb;not null;default:'[]'"`
	Status       string `gorm:"type:varchar(20);not null"`
	PlacedAt     time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ReservationModel mirrors the 'reservations' table.
type ReservationModel struct {
	ID              string `gorm:"type:varchar(20);primary_key"`
	CustomerName    string `gorm:"type:varchar(100);not null"`
	Date            string `gorm:"type:varchar(10);not null"`
	Time            string `gorm:"type:varchar(5);not null"`
	PartySize       int    `gorm:"not null"`
	Status          string `gorm:"type:varchar(20);not null"`
	SpecialRequests string `gorm:"type:text"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}

// TableModel mirrors the 'tables' table.
type TableModel struct {
	ID        int    `gorm:"primary_key"`
	SeatCount int    `gorm:"not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TableModel) TableName() string {
	return "tables"
}

// StaffMemberModel mirrors the 'staff_members' table.
type StaffMemberModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	RoleLabel string    `gorm:"type:varchar(50);not null"`
	OnDuty    string    `gorm:"type:varchar(10);not null"`
	Shift     string    `gorm:"type:varchar(20)"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffMemberModel) TableName() string {
	return "staff_members"
}
