package database

import (
	"context"

	"gorm.io/gorm"
	"shopapi.app/internal/ports"
	"shopapi.app/pkg/errors"
)

// UserRepositoryAdapter implements the UserRepository port using GORM
type UserRepositoryAdapter struct {
	db *gorm.DB
}

// NewUserRepositoryAdapter creates a new user repository adapter
func NewUserRepositoryAdapter(db *gorm.DB) ports.UserRepository {
	return &UserRepositoryAdapter{db: db}
}

// Create inserts a user and fills in its generated ID and timestamps
func (r *UserRepositoryAdapter) Create(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}

	model := r.dataToModel(user)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		if result.Error == gorm.ErrDuplicatedKey {
			return errors.NewAlreadyExistsError("user already exists")
		}
		return errors.NewDatabaseError("failed to create user", result.Error)
	}

	*user = *r.modelToData(model)
	return nil
}

// FindByID retrieves a user by its ID
func (r *UserRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.UserData, error) {
	if id == "" {
		return nil, errors.NewValidationError("user ID cannot be empty")
	}

	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail retrieves a user by email address
func (r *UserRepositoryAdapter) FindByEmail(ctx context.Context, email string) (*ports.UserData, error) {
	if email == "" {
		return nil, errors.NewValidationError("email cannot be empty")
	}

	return r.findOne(ctx, "email = ?", email)
}

// Update modifies an existing user
func (r *UserRepositoryAdapter) Update(ctx context.Context, user *ports.UserData) error {
	if user == nil {
		return errors.NewValidationError("user cannot be nil")
	}
	if user.ID == "" {
		return errors.NewValidationError("user ID cannot be empty for update")
	}

	model := r.dataToModel(user)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return errors.NewDatabaseError("failed to update user", result.Error)
	}

	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepositoryAdapter) findOne(ctx context.Context, query string, arg interface{}) (*ports.UserData, error) {
	var model UserModel
	result := r.db.WithContext(ctx).Where(query, arg).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, errors.NewDatabaseError("failed to find user", result.Error)
	}

	return r.modelToData(&model), nil
}

// dataToModel converts port data to database model
func (r *UserRepositoryAdapter) dataToModel(data *ports.UserData) *UserModel {
	return &UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      data.Address,
		Role:         data.Role,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// modelToData converts database model to port data
func (r *UserRepositoryAdapter) modelToData(model *UserModel) *ports.UserData {
	return &ports.UserData{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Phone:        model.Phone,
		Address:      model.Address,
		Role:         model.Role,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
