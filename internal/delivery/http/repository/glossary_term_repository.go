package repository

import (
	"github.com/evandrarf/cryptolearn-be/internal/entity"
	"gorm.io/gorm"
)

type (
	GlossaryTermRepository interface {
		CreateBatch(db *gorm.DB, terms []entity.GlossaryTerm) error
		FindAll(db *gorm.DB) ([]entity.GlossaryTerm, error)
		Count(db *gorm.DB) (int64, error)
	}

	glossaryTermRepository struct {
		db *gorm.DB
	}
)

func NewGlossaryTermRepository(db *gorm.DB) GlossaryTermRepository {
	return &glossaryTermRepository{db: db}
}

func (r *glossaryTermRepository) CreateBatch(db *gorm.DB, terms []entity.GlossaryTerm) error {
	if db == nil {
		db = r.db
	}
	if len(terms) == 0 {
		return nil
	}
	return db.CreateInBatches(&terms, 100).Error
}

// FindAll returns rows in catalog order.
func (r *glossaryTermRepository) FindAll(db *gorm.DB) ([]entity.GlossaryTerm, error) {
	if db == nil {
		db = r.db
	}
	var terms []entity.GlossaryTerm
	err := db.Order("position ASC").Order("id ASC").Find(&terms).Error
	return terms, err
}

func (r *glossaryTermRepository) Count(db *gorm.DB) (int64, error) {
	if db == nil {
		db = r.db
	}
	var count int64
	err := db.Model(&entity.GlossaryTerm{}).Count(&count).Error
	return count, err
}
