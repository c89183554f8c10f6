package models

import (
	"fmt"
	"strings"
	"time"
)

// Vehicle type enumeration.
const (
	TypeAutomobile = "automobile"
	TypeMotorcycle = "motorcycle"
	TypeTruck      = "truck"
	TypeSUV        = "suv"
	TypeVan        = "van"
	TypePickup     = "pickup"
)

// Fuel type enumeration.
const (
	FuelGasoline = "gasoline"
	FuelDiesel   = "diesel"
	FuelElectric = "electric"
	FuelHybrid   = "hybrid"
	FuelGas      = "gas"
)

// Vehicle status enumeration.
const (
	StatusActive        = "active"
	StatusSold          = "sold"
	StatusWrecked       = "wrecked"
	StatusInMaintenance = "in_maintenance"
)

var VehicleTypes = []string{TypeAutomobile, TypeMotorcycle, TypeTruck, TypeSUV, TypeVan, TypePickup}

var FuelTypes = []string{FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid, FuelGas}

var VehicleStatuses = []string{StatusActive, StatusSold, StatusWrecked, StatusInMaintenance}

type Vehicle struct {
	ID            string    `json:"id" gorm:"primaryKey;size:191"`
	OwnerID       string    `json:"owner_id" gorm:"not null;index;size:191"`
	Make          string    `json:"make" gorm:"not null;size:100"`
	Model         string    `json:"model" gorm:"not null;size:100"`
	Year          int       `json:"year" gorm:"not null"`
	Plate         string    `json:"plate" gorm:"uniqueIndex:idx_vehicles_plate;not null;size:20"`
	Color         string    `json:"color" gorm:"not null;size:50"`
	Type          string    `json:"type" gorm:"not null;size:20"`
	ChassisNumber *string   `json:"chassis_number" gorm:"uniqueIndex:idx_vehicles_chassis_number;size:64"`
	MotorNumber   *string   `json:"motor_number" gorm:"uniqueIndex:idx_vehicles_motor_number;size:64"`
	FuelType      string    `json:"fuel_type" gorm:"not null;size:20"`
	Mileage       int       `json:"mileage" gorm:"not null"`
	Status        string    `json:"status" gorm:"not null;size:20"`
	RegisteredAt  time.Time `json:"registered_at" gorm:"index"`
	UpdatedAt     time.Time `json:"updated_at"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// Normalize brings all fields to their canonical stored form: plates are
// uppercased, type/fuel/status lowercased, free-text fields trimmed, and
// empty chassis/motor numbers collapsed to NULL so the sparse unique
// indexes never collide on absence.
func (v *Vehicle) Normalize() {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.Color = strings.TrimSpace(v.Color)
	v.Plate = strings.ToUpper(strings.TrimSpace(v.Plate))
	v.Type = strings.ToLower(strings.TrimSpace(v.Type))
	v.FuelType = strings.ToLower(strings.TrimSpace(v.FuelType))
	v.Status = strings.ToLower(strings.TrimSpace(v.Status))
	v.ChassisNumber = normalizeSparse(v.ChassisNumber)
	v.MotorNumber = normalizeSparse(v.MotorNumber)
}

// ApplyDefaults fills the fields the caller may omit.
func (v *Vehicle) ApplyDefaults() {
	if v.FuelType == "" {
		v.FuelType = FuelGasoline
	}
	if v.Status == "" {
		v.Status = StatusActive
	}
}

// Validate checks required fields, ranges and enumerations. It expects the
// vehicle to be normalized and defaulted first.
func (v *Vehicle) Validate() error {
	if v.Make == "" {
		return fmt.Errorf("make is required")
	}
	if v.Model == "" {
		return fmt.Errorf("model is required")
	}
	if v.Plate == "" {
		return fmt.Errorf("plate is required")
	}
	if v.Color == "" {
		return fmt.Errorf("color is required")
	}
	maxYear := time.Now().Year() + 1
	if v.Year < 1900 || v.Year > maxYear {
		return fmt.Errorf("year must be between 1900 and %d", maxYear)
	}
	if !contains(VehicleTypes, v.Type) {
		return fmt.Errorf("type must be one of: %s", strings.Join(VehicleTypes, ", "))
	}
	if !contains(FuelTypes, v.FuelType) {
		return fmt.Errorf("fuel_type must be one of: %s", strings.Join(FuelTypes, ", "))
	}
	if !contains(VehicleStatuses, v.Status) {
		return fmt.Errorf("status must be one of: %s", strings.Join(VehicleStatuses, ", "))
	}
	if v.Mileage < 0 {
		return fmt.Errorf("mileage cannot be negative")
	}
	return nil
}

func normalizeSparse(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
