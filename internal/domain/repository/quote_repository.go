package repository

import (
	"context"

	"github.com/fare-quote-service/internal/domain"
)

// QuoteRepository определяет персистентность расчётов (аудит).
// Движок тарификации записи не читает.
type QuoteRepository interface {
	// Save сохраняет аудиторскую запись расчёта
	Save(ctx context.Context, record *domain.QuoteRecord) error
}
