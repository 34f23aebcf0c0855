package repository

import (
	"errors"

	"gorm.io/gorm"

	"moviechat/internal/models"
	"moviechat/internal/storage"
)

type IdentityRepository interface {
	Create(ident *models.Identity) error
	FindByID(id string) (*models.Identity, error)
}

type identityRepository struct {
	db *storage.PostgresDB
}

func NewIdentityRepository(db *storage.PostgresDB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(ident *models.Identity) error {
	return r.db.Create(ident).Error
}

func (r *identityRepository) FindByID(id string) (*models.Identity, error) {
	var ident models.Identity
	err := r.db.Where("id = ?", id).First(&ident).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ident, nil
}
