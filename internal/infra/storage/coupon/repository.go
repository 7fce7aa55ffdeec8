package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки Postgres для нарушения уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий купонов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает купон по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "factor", "created_at").
		From("coupons").
		Where(squirrel.Eq{"code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Coupon
	var factor sql.NullFloat64
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.Code, &factor, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan coupon: %v", ErrScanRow, err)
	}

	if factor.Valid {
		c.Factor = &factor.Float64
	}
	c.CreatedAt = createdAt.Time

	return &c, nil
}

// Create создает купон
func (r *Repository) Create(ctx context.Context, c *domain.Coupon) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("coupons").
		Columns("code", "factor").
		Values(c.Code, c.Factor).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCoupon
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
