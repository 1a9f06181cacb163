package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/arenda-soft/ARS-SettlementService/internal/domain"
	"github.com/arenda-soft/ARS-SettlementService/pkg/dbmetrics"
	"github.com/arenda-soft/ARS-SettlementService/pkg/psqlbuilder"
)

// bookingColumns полный список колонок таблицы bookings.
// Производные поля расчёта (комиссия, остатки, средства владельца) в таблице
// отсутствуют намеренно: хранятся только сырые входные данные и снапшот ставки.
var bookingColumns = []string{
	"id",
	"apartment_id",
	"check_in",
	"check_out",
	"accommodation_amount",
	"total_amount",
	"early_check_in",
	"late_check_out",
	"parking",
	"aggregator_commission_percent",
	"tax_bank_commission_amount",
	"operating_expenses",
	"expense_cleaning",
	"expense_laundry",
	"expense_hygiene",
	"expense_transport",
	"expense_compliment",
	"expense_other",
	"commission_rate_percent",
	"show_to_guest",
	"payment_status",
	"payment_completed_at",
	"is_prepaid",
	"prepayment_amount",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование. ID (uuid) генерируется вызывающей стороной.
// Если в контексте передана активная транзакция, использует её — создание
// бронирования с проверкой доступности дат должно идти в одной транзакции,
// иначе возможна гонка и двойное бронирование.
func (r *Repository) Create(ctx context.Context, b *domain.BookingRecord) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"apartment_id",
			"check_in",
			"check_out",
			"accommodation_amount",
			"total_amount",
			"early_check_in",
			"late_check_out",
			"parking",
			"aggregator_commission_percent",
			"tax_bank_commission_amount",
			"operating_expenses",
			"expense_cleaning",
			"expense_laundry",
			"expense_hygiene",
			"expense_transport",
			"expense_compliment",
			"expense_other",
			"commission_rate_percent",
			"show_to_guest",
			"payment_status",
			"payment_completed_at",
			"is_prepaid",
			"prepayment_amount",
			"status",
		).
		Values(
			b.ID,
			b.ApartmentID,
			b.CheckIn,
			b.CheckOut,
			b.AccommodationAmount,
			b.TotalAmount,
			b.EarlyCheckIn,
			b.LateCheckOut,
			b.Parking,
			b.AggregatorCommissionPercent,
			b.TaxBankCommissionAmount,
			b.OperatingExpenses,
			b.Expenses.Cleaning,
			b.Expenses.Laundry,
			b.Expenses.Hygiene,
			b.Expenses.Transport,
			b.Expenses.Compliment,
			b.Expenses.Other,
			b.CommissionRatePercent,
			b.ShowToGuest,
			b.PaymentStatus,
			b.PaymentCompletedAt,
			b.IsPrepaid,
			b.PrepaymentAmount,
			b.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByApartmentWithFilter получает бронирования апартамента с фильтрацией
// по интервалу пересечения, периоду заезда и статусу.
//
// Интервал пересечения полуоткрытый: бронирование с выездом в день OverlapsFrom
// не пересекается (день выезда свободен для следующего заезда).
//
// Если метод вызван внутри транзакции и задан интервал пересечения, строки
// блокируются FOR UPDATE — так создание бронирования исключает двойное
// бронирование при конкурентных запросах.
func (r *Repository) GetByApartmentWithFilter(ctx context.Context, filter domain.ApartmentBookingsFilter) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"apartment_id": filter.ApartmentID})

	// Полуоткрытое пересечение интервалов: check_in < to AND check_out > from
	if filter.OverlapsFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.OverlapsFrom})
	}
	if filter.OverlapsTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.OverlapsTo})
	}

	// Фильтрация по периоду заезда
	if filter.CheckInFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"check_in": *filter.CheckInFrom})
	}
	if filter.CheckInTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"check_in": *filter.CheckInTo})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC")

	// Блокировка строк при проверке доступности внутри транзакции
	if dbmetrics.IsInTransaction(ctx) && filter.OverlapsFrom != nil && filter.OverlapsTo != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByApartmentWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByApartmentWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByPeriod получает бронирования для отчёта за период (по дате заезда),
// опционально по одному апартаменту
func (r *Repository) GetByPeriod(ctx context.Context, filter domain.SettlementPeriodFilter) ([]*domain.BookingRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"check_in": filter.From}).
		Where(squirrel.LtOrEq{"check_in": filter.To})

	if filter.ApartmentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"apartment_id": *filter.ApartmentID})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.
		OrderBy("apartment_id ASC, check_in ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateRawInputs обновляет сырые финансовые данные и флаги бронирования.
// Снапшот ставки комиссии не трогаем: он фиксируется при создании.
func (r *Repository) UpdateRawInputs(ctx context.Context, id string, b *domain.BookingRecord) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("accommodation_amount", b.AccommodationAmount).
		Set("total_amount", b.TotalAmount).
		Set("early_check_in", b.EarlyCheckIn).
		Set("late_check_out", b.LateCheckOut).
		Set("parking", b.Parking).
		Set("aggregator_commission_percent", b.AggregatorCommissionPercent).
		Set("tax_bank_commission_amount", b.TaxBankCommissionAmount).
		Set("operating_expenses", b.OperatingExpenses).
		Set("expense_cleaning", b.Expenses.Cleaning).
		Set("expense_laundry", b.Expenses.Laundry).
		Set("expense_hygiene", b.Expenses.Hygiene).
		Set("expense_transport", b.Expenses.Transport).
		Set("expense_compliment", b.Expenses.Compliment).
		Set("expense_other", b.Expenses.Other).
		Set("show_to_guest", b.ShowToGuest).
		Set("payment_status", b.PaymentStatus).
		Set("payment_completed_at", b.PaymentCompletedAt).
		Set("is_prepaid", b.IsPrepaid).
		Set("prepayment_amount", b.PrepaymentAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRawInputs - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRawInputs - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateRawInputs - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

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
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины.
// Физического удаления нет: отмена — это статус, строка остаётся в леджере.
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking сканирует одну строку в BookingRecord
func scanBooking(scan func(dest ...interface{}) error) (*domain.BookingRecord, error) {
	var b domain.BookingRecord
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&b.ID,
		&b.ApartmentID,
		&b.CheckIn,
		&b.CheckOut,
		&b.AccommodationAmount,
		&b.TotalAmount,
		&b.EarlyCheckIn,
		&b.LateCheckOut,
		&b.Parking,
		&b.AggregatorCommissionPercent,
		&b.TaxBankCommissionAmount,
		&b.OperatingExpenses,
		&b.Expenses.Cleaning,
		&b.Expenses.Laundry,
		&b.Expenses.Hygiene,
		&b.Expenses.Transport,
		&b.Expenses.Compliment,
		&b.Expenses.Other,
		&b.CommissionRatePercent,
		&b.ShowToGuest,
		&b.PaymentStatus,
		&b.PaymentCompletedAt,
		&b.IsPrepaid,
		&b.PrepaymentAmount,
		&b.Status,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.BookingRecord, error) {
	bookings := make([]*domain.BookingRecord, 0)

	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
