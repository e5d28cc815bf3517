// Command export writes the configured catalog to an Excel workbook that the
// xlsx catalog source can load back.
//
//	go run ./cmd/export glossary.xlsx
package main

import (
	"os"

	"github.com/evandrarf/cryptolearn-be/internal/config"
	"github.com/evandrarf/cryptolearn-be/internal/pkg/importer"
)

func main() {
	viperConfig := config.NewViper()
	log := config.NewLogger(viperConfig)

	if len(os.Args) != 2 {
		log.Fatal("usage: export <file.xlsx>")
	}
	path := os.Args[1]

	catalog, err := config.LoadCatalog(viperConfig, log)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	err = importer.WriteTerms(importer.ImportConfig{
		FilePath:  path,
		SheetName: viperConfig.GetString("catalog.xlsx.sheet"),
	}, catalog.Records())
	if err != nil {
		log.Fatalf("Failed to export catalog: %v", err)
	}

	log.WithField("path", path).WithField("terms", catalog.Len()).Info("Catalog exported")
}
