package hall

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

// Repository репозиторий залов и их правил цены
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает зал вместе с правилами цены в порядке position
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_price",
		"prepayment_percent",
		"created_at",
		"updated_at",
	).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var hall domain.Hall
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&hall.Name,
		&hall.BasePrice,
		&hall.PrepaymentPercent,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	prices, err := r.getPrices(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	hall.Prices = prices

	return &hall, nil
}

// List получает все залы без правил цены, отсортированные по id
func (r *Repository) List(ctx context.Context) ([]*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_price",
		"prepayment_percent",
		"created_at",
		"updated_at",
	).
		From("halls").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		var hall domain.Hall
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.BasePrice,
			&hall.PrepaymentPercent,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan hall: %v", ErrScanRow, err)
		}
		hall.CreatedAt = createdAt.Time
		hall.UpdatedAt = updatedAt.Time
		halls = append(halls, &hall)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return halls, nil
}

// Create создает зал и его правила цены
// Вызывать внутри транзакции, иначе при ошибке вставки правил зал останется без них
func (r *Repository) Create(ctx context.Context, hall *domain.Hall) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("halls").
		Columns("name", "base_price", "prepayment_percent").
		Values(hall.Name, hall.BasePrice, hall.PrepaymentPercent).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&hall.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	if err := r.insertPrices(ctx, executor, hall.ID, hall.Prices); err != nil {
		return nil, err
	}

	return hall, nil
}

// ReplacePrices заменяет все правила цены зала новым списком
// Вызывать внутри транзакции
func (r *Repository) ReplacePrices(ctx context.Context, hallID int64, prices []domain.PriceRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("halls").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": hallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplacePrices - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReplacePrices - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplacePrices - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrHallNotFound
	}

	query, args, err = psqlbuilder.Delete("hall_prices").
		Where(squirrel.Eq{"hall_id": hallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplacePrices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplacePrices - execute delete: %v", ErrExecQuery, err)
	}

	return r.insertPrices(ctx, executor, hallID, prices)
}

func (r *Repository) getPrices(ctx context.Context, executor DBExecutor, hallID int64) ([]domain.PriceRule, error) {
	query, args, err := pricesQuery(hallID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getPrices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getPrices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make([]domain.PriceRule, 0)
	for rows.Next() {
		var rule domain.PriceRule
		var mask sql.NullInt16
		var timeFrom, timeTo sql.NullString

		err := rows.Scan(
			&rule.ID,
			&rule.HallID,
			&rule.Position,
			&rule.Comparison,
			&rule.FromLength,
			&mask,
			&rule.Type,
			&timeFrom,
			&timeTo,
			&rule.Price,
			pq.Array(&rule.ServiceIDs),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getPrices - scan row: %v", ErrScanRow, err)
		}

		if mask.Valid {
			m := domain.ScheduleMask(mask.Int16)
			rule.ScheduleMask = &m
		}
		if timeFrom.Valid {
			rule.TimeFrom = &timeFrom.String
		}
		if timeTo.Valid {
			rule.TimeTo = &timeTo.String
		}

		prices = append(prices, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getPrices - rows error: %v", ErrScanRow, err)
	}

	return prices, nil
}

func (r *Repository) insertPrices(ctx context.Context, executor DBExecutor, hallID int64, prices []domain.PriceRule) error {
	if len(prices) == 0 {
		return nil
	}

	query, args, err := insertPricesQuery(hallID, prices).ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertPrices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertPrices - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// pricesQuery правила цены зала в порядке position
func pricesQuery(hallID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"hall_id",
		"position",
		"comparison",
		"from_length",
		"schedule_mask",
		"type",
		"time_from",
		"time_to",
		"price",
		"service_ids",
	).
		From("hall_prices").
		Where(squirrel.Eq{"hall_id": hallID}).
		OrderBy("position ASC", "id ASC")
}

// insertPricesQuery вставка правил цены, position равен индексу правила в списке
func insertPricesQuery(hallID int64, prices []domain.PriceRule) squirrel.InsertBuilder {
	insert := psqlbuilder.Insert("hall_prices").
		Columns(
			"hall_id",
			"position",
			"comparison",
			"from_length",
			"schedule_mask",
			"type",
			"time_from",
			"time_to",
			"price",
			"service_ids",
		)

	for i, rule := range prices {
		var mask *int16
		if rule.ScheduleMask != nil {
			m := int16(*rule.ScheduleMask)
			mask = &m
		}

		insert = insert.Values(
			hallID,
			i,
			rule.Comparison,
			rule.FromLength,
			mask,
			rule.Type,
			rule.TimeFrom,
			rule.TimeTo,
			rule.Price,
			pq.Array(rule.ServiceIDs),
		)
	}

	return insert
}
