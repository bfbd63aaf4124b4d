package repository

import (
	"errors"

	"github.com/pshams/tradebook/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	List() ([]model.User, error)
	Update(user *model.User) error
	Delete(id string) error
}

type gormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (gur *gormUserRepository) Create(user *model.User) error {
	return gur.db.Create(user).Error
}

func (gur *gormUserRepository) FindByID(id string) (*model.User, error) {
	var user model.User
	err := gur.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (gur *gormUserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := gur.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (gur *gormUserRepository) List() ([]model.User, error) {
	var users []model.User
	err := gur.db.Order("id desc").Find(&users).Error
	return users, err
}

func (gur *gormUserRepository) Update(user *model.User) error {
	return gur.db.Save(user).Error
}

func (gur *gormUserRepository) Delete(id string) error {
	return gur.db.Delete(&model.User{}, "id = ?", id).Error
}
