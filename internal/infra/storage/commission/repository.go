package commission

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	"github.com/arenda-soft/ARS-SettlementService/pkg/dbmetrics"
	"github.com/arenda-soft/ARS-SettlementService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var configColumns = []string{
	"id",
	"apartment_id",
	"commission_rate_percent",
	"owner_id",
	"owner_name",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации комиссий по апартаментам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комиссий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByApartment получает конфигурацию комиссии апартамента
func (r *Repository) GetByApartment(ctx context.Context, apartmentID int64) (*domain.CommissionConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("commission_configs").
		Where(squirrel.Eq{"apartment_id": apartmentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByApartment - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.CommissionConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.ApartmentID,
		&cfg.CommissionRatePercent,
		&cfg.OwnerID,
		&cfg.OwnerName,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByApartment - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

// GetAll получает все конфигурации комиссий
func (r *Repository) GetAll(ctx context.Context) ([]*domain.CommissionConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("commission_configs").
		OrderBy("apartment_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.CommissionConfig, 0)

	for rows.Next() {
		var cfg domain.CommissionConfig
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&cfg.ID,
			&cfg.ApartmentID,
			&cfg.CommissionRatePercent,
			&cfg.OwnerID,
			&cfg.OwnerName,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		cfg.CreatedAt = createdAt.Time
		cfg.UpdatedAt = updatedAt.Time

		configs = append(configs, &cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert сохраняет конфигурацию комиссии апартамента.
// Одна строка на апартамент: повторное сохранение обновляет ставку и владельца.
func (r *Repository) Upsert(ctx context.Context, cfg *domain.CommissionConfig) (*domain.CommissionConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("commission_configs").
		Columns(
			"apartment_id",
			"commission_rate_percent",
			"owner_id",
			"owner_name",
		).
		Values(
			cfg.ApartmentID,
			cfg.CommissionRatePercent,
			cfg.OwnerID,
			cfg.OwnerName,
		).
		Suffix(`ON CONFLICT (apartment_id) DO UPDATE SET
			commission_rate_percent = EXCLUDED.commission_rate_percent,
			owner_id = EXCLUDED.owner_id,
			owner_name = EXCLUDED.owner_name,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// Delete удаляет конфигурацию комиссии апартамента (возврат к дефолтной ставке)
func (r *Repository) Delete(ctx context.Context, apartmentID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("commission_configs").
		Where(squirrel.Eq{"apartment_id": apartmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}
