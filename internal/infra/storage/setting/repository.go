package setting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
	"github.com/m04kA/SMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HallBookingService/pkg/psqlbuilder"
)

// Repository репозиторий глобальных настроек (key/value)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает настройку по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := getByKeyQuery(key).ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Setting
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.Key, &s.Value)
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan setting: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert создает настройку или обновляет значение существующей
func (r *Repository) Upsert(ctx context.Context, s *domain.Setting) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertQuery(s).ToSql()

	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func getByKeyQuery(key string) squirrel.SelectBuilder {
	return psqlbuilder.Select("key", "value").
		From("settings").
		Where(squirrel.Eq{"key": key})
}

// upsertQuery при существующем ключе заменяет только значение
func upsertQuery(s *domain.Setting) squirrel.InsertBuilder {
	return psqlbuilder.Insert("settings").
		Columns("key", "value").
		Values(s.Key, s.Value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")
}
