package contract

import (
	"context"

	"github.com/LucasRomanSaad/stoicChatBOT/internal/entity"
)

type IngestionRunRepository interface {
	Create(ctx context.Context, run *entity.IngestionRun) error
	FindRecent(ctx context.Context, limit int) ([]*entity.IngestionRun, error)
}
