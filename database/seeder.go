package database

import (
	"fmt"

	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/repository"
	"github.com/evandrarf/cryptolearn-be/internal/entity"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedGlossaryTerms fills an empty glossary_terms table with records.
// A table that already has rows is left alone.
func SeedGlossaryTerms(db *gorm.DB, repo repository.GlossaryTermRepository, records []glossary.TermRecord, log *logrus.Logger) error {
	count, err := repo.Count(db)
	if err != nil {
		return fmt.Errorf("count glossary terms: %w", err)
	}
	if count > 0 {
		log.WithField("rows", count).Info("Glossary already seeded, skipping")
		return nil
	}

	rows := make([]entity.GlossaryTerm, 0, len(records))
	for i, record := range records {
		row, err := mapper.ConvertToGlossaryTerm(i, record)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.CreateBatch(tx, rows)
	})
	if err != nil {
		return fmt.Errorf("seed glossary terms: %w", err)
	}

	log.WithField("rows", len(rows)).Info("Seeded glossary terms")
	return nil
}
