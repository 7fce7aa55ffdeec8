package reservation

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

// Repository репозиторий записей бронирования и входящих в них резерваций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindByHallAndRange возвращает резервации зала с start_at в [startAt, endAt)
// Резервации отмененных записей не учитываются
func (r *Repository) FindByHallAndRange(ctx context.Context, hallID int64, startAt, endAt int64) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := findByHallAndRangeQuery(hallID, startAt, endAt).ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindByHallAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByHallAndRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CreateRecord создает запись и её резервации
// Вызывать внутри транзакции
func (r *Repository) CreateRecord(ctx context.Context, record *domain.Record) (*domain.Record, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("records").
		Columns(
			"user_id",
			"hall_id",
			"service_ids",
			"coupon_code",
			"price",
			"prepayment",
			"status",
			"comment",
		).
		Values(
			record.UserID,
			record.HallID,
			pq.Array(record.ServiceIDs),
			record.CouponCode,
			record.Price,
			record.Prepayment,
			record.Status,
			record.Comment,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecord - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecord - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	if len(record.Reservations) == 0 {
		return record, nil
	}

	insert := psqlbuilder.Insert("reservations").Columns("record_id", "hall_id", "start_at", "length")
	for _, res := range record.Reservations {
		insert = insert.Values(record.ID, record.HallID, res.StartAt, res.Length)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecord - build reservations insert: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateRecord - execute reservations insert: %v", ErrExecQuery, err)
	}

	return record, nil
}

// GetRecordByID получает запись вместе с резервациями
func (r *Repository) GetRecordByID(ctx context.Context, id int64) (*domain.Record, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"hall_id",
		"service_ids",
		"coupon_code",
		"price",
		"prepayment",
		"status",
		"payment_status",
		"comment",
		"created_at",
		"updated_at",
	).
		From("records").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecordByID - build select query: %v", ErrBuildQuery, err)
	}

	var record domain.Record
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.UserID,
		&record.HallID,
		pq.Array(&record.ServiceIDs),
		&record.CouponCode,
		&record.Price,
		&record.Prepayment,
		&record.Status,
		&record.PaymentStatus,
		&record.Comment,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecordByID - scan record: %v", ErrScanRow, err)
	}

	record.CreatedAt = createdAt.Time
	record.UpdatedAt = updatedAt.Time

	query, args, err = psqlbuilder.Select("start_at", "length").
		From("reservations").
		Where(squirrel.Eq{"record_id": id}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecordByID - build reservations query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecordByID - execute reservations query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	record.Reservations, err = scanReservations(rows)
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RecordStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := updateStatusQuery(id, status).ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// findByHallAndRangeQuery резервации зала с start_at в [startAt, endAt), отмененные записи не учитываются
func findByHallAndRangeQuery(hallID int64, startAt, endAt int64) squirrel.SelectBuilder {
	return psqlbuilder.Select("r.start_at", "r.length").
		From("reservations r").
		Join("records rec ON rec.id = r.record_id").
		Where(squirrel.Eq{"r.hall_id": hallID}).
		Where(squirrel.GtOrEq{"r.start_at": startAt}).
		Where(squirrel.Lt{"r.start_at": endAt}).
		Where(squirrel.NotEq{"rec.status": domain.RecordStatusCancelled}).
		OrderBy("r.start_at ASC")
}

func updateStatusQuery(id int64, status domain.RecordStatus) squirrel.UpdateBuilder {
	return psqlbuilder.Update("records").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
}

// scanReservations сканирует пары (start_at, length)
func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	reservations := make([]domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(&res.StartAt, &res.Length); err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
