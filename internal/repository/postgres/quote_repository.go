package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fare-quote-service/internal/domain"
	"github.com/fare-quote-service/internal/domain/repository"
)

// quoteRepository - аудиторская персистентность расчётов.
// Движок тарификации записи не читает, таблица нужна диспетчерской
// для последующего подтверждения брони.
type quoteRepository struct {
	db *DB
}

func NewQuoteRepository(db *DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) Save(ctx context.Context, record *domain.QuoteRecord) error {
	query := `
		INSERT INTO fare_quotes (id, booking_type, request, result, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.BookingType,
		record.RequestJSON,
		record.ResultJSON,
		record.CreatedAt,
	)
	if err != nil {
		r.db.logger.Error("Failed to save quote record",
			zap.String("quote_id", record.ID),
			zap.Error(err))
		return fmt.Errorf("save quote record: %w", err)
	}

	r.db.logger.Debug("Quote record saved", zap.String("quote_id", record.ID))
	return nil
}
