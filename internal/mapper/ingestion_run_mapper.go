package mapper

import (
	"encoding/json"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/model"

	"gorm.io/datatypes"
)

type IngestionRunMapper struct{}

func NewIngestionRunMapper() *IngestionRunMapper {
	return &IngestionRunMapper{}
}

func (m *IngestionRunMapper) ToEntity(r *model.IngestionRun) *entity.IngestionRun {
	if r == nil {
		return nil
	}

	var processed, skipped []string
	_ = json.Unmarshal(r.ProcessedFiles, &processed)
	_ = json.Unmarshal(r.SkippedFiles, &skipped)

	return &entity.IngestionRun{
		Id:             r.Id,
		ProcessedFiles: processed,
		SkippedFiles:   skipped,
		TotalChunks:    r.TotalChunks,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *IngestionRunMapper) ToModel(r *entity.IngestionRun) *model.IngestionRun {
	if r == nil {
		return nil
	}

	processed, _ := json.Marshal(emptyIfNil(r.ProcessedFiles))
	skipped, _ := json.Marshal(emptyIfNil(r.SkippedFiles))

	return &model.IngestionRun{
		Id:             r.Id,
		ProcessedFiles: datatypes.JSON(processed),
		SkippedFiles:   datatypes.JSON(skipped),
		TotalChunks:    r.TotalChunks,
		CreatedAt:      r.CreatedAt,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
