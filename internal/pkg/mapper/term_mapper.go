package mapper

import (
	"encoding/json"
	"fmt"

	dbEntity "github.com/evandrarf/cryptolearn-be/internal/entity"
	"github.com/evandrarf/cryptolearn-be/internal/glossary"
)

// ConvertToTermRecord - Convert DB entity to domain record
func ConvertToTermRecord(dbTerm *dbEntity.GlossaryTerm) (glossary.TermRecord, error) {
	var tags []string
	if dbTerm.Tags != "" {
		if err := json.Unmarshal([]byte(dbTerm.Tags), &tags); err != nil {
			return glossary.TermRecord{}, fmt.Errorf("term %q: invalid tags: %w", dbTerm.Term, err)
		}
	}

	difficulty, err := glossary.ParseDifficulty(dbTerm.Difficulty)
	if err != nil {
		return glossary.TermRecord{}, fmt.Errorf("term %q: %w", dbTerm.Term, err)
	}
	importance, err := glossary.ParseImportance(dbTerm.Importance)
	if err != nil {
		return glossary.TermRecord{}, fmt.Errorf("term %q: %w", dbTerm.Term, err)
	}

	return glossary.TermRecord{
		Term:       dbTerm.Term,
		Definition: dbTerm.Definition,
		Example:    dbTerm.Example,
		Category:   dbTerm.Category,
		Difficulty: difficulty,
		Importance: importance,
		Tags:       tags,
	}, nil
}

// ConvertToGlossaryTerm - Convert domain record to DB entity
func ConvertToGlossaryTerm(position int, record glossary.TermRecord) (dbEntity.GlossaryTerm, error) {
	tags := record.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return dbEntity.GlossaryTerm{}, fmt.Errorf("term %q: marshal tags: %w", record.Term, err)
	}

	importance := record.Importance
	if importance == "" {
		importance = glossary.ImportanceMedium
	}

	return dbEntity.GlossaryTerm{
		Position:   position,
		Term:       record.Term,
		Definition: record.Definition,
		Example:    record.Example,
		Category:   record.Category,
		Difficulty: string(record.Difficulty),
		Importance: string(importance),
		Tags:       string(tagsJSON),
	}, nil
}
