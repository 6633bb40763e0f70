package mapper

import (
	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
	"github.com/LucasRomanSaad/stoicChatBOT/internal/model"

	"github.com/pgvector/pgvector-go"
)

type ChunkMapper struct{}

func NewChunkMapper() *ChunkMapper {
	return &ChunkMapper{}
}

func (m *ChunkMapper) ToEntity(c *model.DocumentChunk) *entity.DocumentChunk {
	if c == nil {
		return nil
	}

	return &entity.DocumentChunk{
		Id:         c.Id,
		ChunkId:    c.ChunkId,
		Content:    c.Content,
		Title:      c.Title,
		Page:       c.Page,
		SourcePath: c.SourcePath,
		Embedding:  c.Embedding.Slice(),
		CreatedAt:  c.CreatedAt,
	}
}

func (m *ChunkMapper) ToModel(c *entity.DocumentChunk) *model.DocumentChunk {
	if c == nil {
		return nil
	}

	return &model.DocumentChunk{
		Id:         c.Id,
		ChunkId:    c.ChunkId,
		Content:    c.Content,
		Title:      c.Title,
		Page:       c.Page,
		SourcePath: c.SourcePath,
		Embedding:  pgvector.NewVector(c.Embedding),
		CreatedAt:  c.CreatedAt,
	}
}
