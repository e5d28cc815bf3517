package config

import (
	"fmt"

	"github.com/evandrarf/cryptolearn-be/database"
	"github.com/evandrarf/cryptolearn-be/internal/delivery/http/repository"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/importer"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	CatalogSourceSeed     = "seed"
	CatalogSourceDatabase = "database"
	CatalogSourceXLSX     = "xlsx"
)

// LoadCatalog builds the term catalog from catalog.source. An empty catalog
// is an error, so the service never starts without terms.
func LoadCatalog(config *viper.Viper, log *logrus.Logger) (*glossary.Catalog, error) {
	source := config.GetString("catalog.source")

	var (
		records []glossary.TermRecord
		err     error
	)
	switch source {
	case "", CatalogSourceSeed:
		records = glossary.DefaultTerms
	case CatalogSourceXLSX:
		records, err = importer.ReadTerms(importer.ImportConfig{
			FilePath:  config.GetString("catalog.xlsx.path"),
			SheetName: config.GetString("catalog.xlsx.sheet"),
		})
	case CatalogSourceDatabase:
		records, err = loadFromDatabase(config, log)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s catalog: %w", source, err)
	}

	catalog, err := glossary.NewCatalog(records)
	if err != nil {
		return nil, err
	}
	if catalog.Len() == 0 {
		return nil, glossary.ErrEmptyCatalog
	}

	log.WithFields(logrus.Fields{
		"source":     source,
		"terms":      catalog.Len(),
		"categories": len(catalog.Categories()),
	}).Info("Catalog loaded")
	return catalog, nil
}

func loadFromDatabase(config *viper.Viper, log *logrus.Logger) ([]glossary.TermRecord, error) {
	db, err := database.New(config)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("Migrations completed successfully")

	repo := repository.NewGlossaryTermRepository(db)
	if err := database.SeedGlossaryTerms(db, repo, glossary.DefaultTerms, log); err != nil {
		return nil, err
	}

	rows, err := repo.FindAll(nil)
	if err != nil {
		return nil, fmt.Errorf("read glossary terms: %w", err)
	}

	records := make([]glossary.TermRecord, 0, len(rows))
	for i := range rows {
		record, err := mapper.ConvertToTermRecord(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
