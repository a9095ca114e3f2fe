package repository

import (
	"context"
	"errors"

	"github.com/lshigami/campuspulse/internal/model"
	"gorm.io/gorm"
)

// ErrUsernameTaken is returned by Create when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// FindAll returns every user with its department preloaded. An empty role means all roles.
	FindAll(ctx context.Context, role model.Role) ([]model.User, error)
	// DeleteStudent removes the student and any survey response in one transaction.
	DeleteStudent(ctx context.Context, id string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUsernameTaken
	}
	return err
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.first(ctx, "users.id = ?", id)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.first(ctx, "users.username = ?", username)
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Preload("Department").Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, role model.Role) ([]model.User, error) {
	var users []model.User
	query := r.db.WithContext(ctx).Preload("Department")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) DeleteStudent(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&model.SurveyResponse{}).Error; err != nil {
			return err
		}
		res := tx.Where("role = ?", model.RoleStudent).Delete(&model.User{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
