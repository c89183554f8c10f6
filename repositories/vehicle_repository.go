package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vehicle-registry-api/models"
)

// VehicleRepository owns vehicle records. Every operation takes the
// authenticated owner id and folds it into the lookup predicate, so a record
// that exists but belongs to someone else is indistinguishable from one that
// does not exist.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// ownedBy is the single ownership scope applied by every read and write.
func ownedBy(ownerID string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("owner_id = ?", ownerID)
	}
}

type VehicleInput struct {
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	Plate         string  `json:"plate"`
	Color         string  `json:"color"`
	Type          string  `json:"type"`
	ChassisNumber *string `json:"chassis_number"`
	MotorNumber   *string `json:"motor_number"`
	FuelType      string  `json:"fuel_type"`
	Mileage       *int    `json:"mileage"`
}

// Create validates and persists a new vehicle for the given owner. Plate,
// chassis and motor uniqueness are enforced by the store's unique indexes;
// on conflict the colliding field is read out of the driver's error.
func (r *VehicleRepository) Create(ownerID string, input VehicleInput) (*models.Vehicle, error) {
	now := time.Now()
	vehicle := models.Vehicle{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Make:          input.Make,
		Model:         input.Model,
		Year:          input.Year,
		Plate:         input.Plate,
		Color:         input.Color,
		Type:          input.Type,
		ChassisNumber: input.ChassisNumber,
		MotorNumber:   input.MotorNumber,
		FuelType:      input.FuelType,
		RegisteredAt:  now,
		UpdatedAt:     now,
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}

	vehicle.Normalize()
	vehicle.ApplyDefaults()
	if err := vehicle.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if err := r.db.Create(&vehicle).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, &DuplicateKeyError{Field: conflictField(err)}
		}
		return nil, err
	}
	return &vehicle, nil
}

type ListOptions struct {
	Page   int
	Limit  int
	Status string
	Type   string
}

type VehicleList struct {
	Vehicles    []models.Vehicle `json:"vehicles"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Total       int64            `json:"total"`
}

// List returns one page of the owner's vehicles, newest registrations first,
// optionally narrowed by status and type.
func (r *VehicleRepository) List(ownerID string, opts ListOptions) (*VehicleList, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	query := r.db.Model(&models.Vehicle{}).Scopes(ownedBy(ownerID))
	if opts.Status != "" {
		query = query.Where("status = ?", normalizeFilter(opts.Status))
	}
	if opts.Type != "" {
		query = query.Where("type = ?", normalizeFilter(opts.Type))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	vehicles := []models.Vehicle{}
	offset := (opts.Page - 1) * opts.Limit
	if err := query.Order("registered_at DESC").Offset(offset).Limit(opts.Limit).Find(&vehicles).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	return &VehicleList{
		Vehicles:    vehicles,
		TotalPages:  totalPages,
		CurrentPage: opts.Page,
		Total:       total,
	}, nil
}

func (r *VehicleRepository) GetByID(ownerID, id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Scopes(ownedBy(ownerID)).First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

type VehicleUpdate struct {
	Make          *string `json:"make"`
	Model         *string `json:"model"`
	Year          *int    `json:"year"`
	Plate         *string `json:"plate"`
	Color         *string `json:"color"`
	Type          *string `json:"type"`
	ChassisNumber *string `json:"chassis_number"`
	MotorNumber   *string `json:"motor_number"`
	FuelType      *string `json:"fuel_type"`
	Mileage       *int    `json:"mileage"`
	Status        *string `json:"status"`
}

// Update applies a partial update to the owner's vehicle, re-validating the
// merged record. The owner reference is immutable and updated_at is stamped
// in the same write even when nothing else changed.
func (r *VehicleRepository) Update(ownerID, id string, update VehicleUpdate) (*models.Vehicle, error) {
	vehicle, err := r.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	if update.Make != nil {
		vehicle.Make = *update.Make
	}
	if update.Model != nil {
		vehicle.Model = *update.Model
	}
	if update.Year != nil {
		vehicle.Year = *update.Year
	}
	if update.Plate != nil {
		vehicle.Plate = *update.Plate
	}
	if update.Color != nil {
		vehicle.Color = *update.Color
	}
	if update.Type != nil {
		vehicle.Type = *update.Type
	}
	if update.ChassisNumber != nil {
		vehicle.ChassisNumber = update.ChassisNumber
	}
	if update.MotorNumber != nil {
		vehicle.MotorNumber = update.MotorNumber
	}
	if update.FuelType != nil {
		vehicle.FuelType = *update.FuelType
	}
	if update.Mileage != nil {
		vehicle.Mileage = *update.Mileage
	}
	if update.Status != nil {
		vehicle.Status = *update.Status
	}

	vehicle.Normalize()
	vehicle.ApplyDefaults()
	if err := vehicle.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	vehicle.UpdatedAt = time.Now()
	updates := map[string]interface{}{
		"make":           vehicle.Make,
		"model":          vehicle.Model,
		"year":           vehicle.Year,
		"plate":          vehicle.Plate,
		"color":          vehicle.Color,
		"type":           vehicle.Type,
		"chassis_number": vehicle.ChassisNumber,
		"motor_number":   vehicle.MotorNumber,
		"fuel_type":      vehicle.FuelType,
		"mileage":        vehicle.Mileage,
		"status":         vehicle.Status,
		"updated_at":     vehicle.UpdatedAt,
	}

	result := r.db.Model(&models.Vehicle{}).Scopes(ownedBy(ownerID)).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			return nil, &DuplicateKeyError{Field: conflictField(result.Error)}
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// Delete removes the owner's vehicle and returns the deleted record.
func (r *VehicleRepository) Delete(ownerID, id string) (*models.Vehicle, error) {
	vehicle, err := r.GetByID(ownerID, id)
	if err != nil {
		return nil, err
	}

	result := r.db.Scopes(ownedBy(ownerID)).Where("id = ?", id).Delete(&models.Vehicle{})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// Filter values get the same normalization as the stored columns; an unknown
// value simply matches nothing.
func normalizeFilter(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
