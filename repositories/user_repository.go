package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vehicle-registry-api/models"
	"vehicle-registry-api/utils"
)

// UserRepository owns identity records: registration, lookup and credential
// verification. The raw password never leaves this package; only its bcrypt
// hash is stored.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
	Address  *string
}

// Register creates a new identity. Email uniqueness is enforced by the
// store's unique index, not a check-then-insert, so concurrent registrations
// of the same email cannot race past each other.
func (r *UserRepository) Register(input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	email := models.NormalizeEmail(input.Email)
	if !utils.IsValidEmail(email) {
		return nil, &ValidationError{Message: "email is invalid"}
	}
	if len(input.Password) < 6 {
		return nil, &ValidationError{Message: "password must be at least 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Address:      input.Address,
		RegisteredAt: time.Now(),
	}

	if err := r.db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up an identity by its normalized email.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// VerifySecret compares the candidate password against the stored hash.
// bcrypt's comparison is constant time.
func (r *UserRepository) VerifySecret(user *models.User, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)) == nil
}

type ProfileUpdate struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateProfile applies a partial update to the non-credential fields. The
// password hash is not reachable through this path.
func (r *UserRepository) UpdateProfile(id string, update ProfileUpdate) (*models.User, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, &ValidationError{Message: "name cannot be empty"}
		}
		updates["name"] = name
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.Address != nil {
		updates["address"] = *update.Address
	}

	if len(updates) > 0 {
		result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	return r.FindByID(id)
}
