package repository

import (
	"github.com/celestine-lau/enactus-app/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves the users whose ids exist; unknown ids are simply absent
// from the result
func (r *UserRepository) GetByIDs(ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// GetByIDsForUpdate retrieves users by id holding row locks until the
// surrounding transaction commits. Membership mutations use this so that
// concurrent team joins for the same user serialize instead of racing the
// team_id check.
func (r *UserRepository) GetByIDsForUpdate(ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).Find(&users).Error
	return users, err
}

// GetByTeamID retrieves all current members of a team
func (r *UserRepository) GetByTeamID(teamID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("team_id = ?", teamID).Order("id").Find(&users).Error
	return users, err
}

// GetAll retrieves all users with pagination
func (r *UserRepository) GetAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("id").Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetTeam sets (or clears, with a nil teamID) the team pointer for the given users
func (r *UserRepository) SetTeam(userIDs []uint, teamID *uint) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).Where("id IN ?", userIDs).
		Update("team_id", teamID).Error
}

// ClearTeamByTeamID clears the team pointer for every member of a team
func (r *UserRepository) ClearTeamByTeamID(teamID uint) error {
	return r.db.Model(&models.User{}).Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}
