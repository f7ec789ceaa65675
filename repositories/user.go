package repositories

import (
	"strings"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindActive retrieves all users in active status, ordered by id
func (r *UserRepository) FindActive() ([]models.User, error) {
	var users []models.User
	result := r.db.Where("status = ?", models.StatusActive).Order("id asc").Find(&users)
	return users, result.Error
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	result := r.db.First(&user, id)
	return user, result.Error
}

// EmailTaken checks whether an already-normalized email belongs to a
// user other than excludeID. Pass 0 to check against all users.
func (r *UserRepository) EmailTaken(email string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.Model(&models.User{}).Where("email = ?", email)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	result := db.Count(&count)
	return count > 0, result.Error
}

// Search retrieves users matching the combined filters, most recently
// created first. Partial matches are case-insensitive.
func (r *UserRepository) Search(query dto.SearchUsersQuery) ([]models.User, error) {
	db := r.db.Model(&models.User{})

	if query.Name != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Name)+"%")
	}
	if query.Email != "" {
		db = db.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(query.Email)+"%")
	}
	if query.Location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(query.Location)+"%")
	}
	if query.Role != "" {
		db = db.Where("role = ?", query.Role)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var users []models.User
	result := db.Order("created_at desc, id desc").Find(&users)
	return users, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := r.db.Create(&user)
	return user, result.Error
}

// Save persists changes to an existing user
func (r *UserRepository) Save(user models.User) (models.User, error) {
	result := r.db.Save(&user)
	return user, result.Error
}
