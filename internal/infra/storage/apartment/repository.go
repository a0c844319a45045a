package apartment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = "23505"

var apartmentColumns = []string{
	"id",
	"owner_id",
	"name",
	"location",
	"size",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с квартирами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория квартир
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую квартиру
// Название уникально в пределах владельца (unique index owner_id, name)
func (r *Repository) Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("apartments").
		Columns("owner_id", "name", "location", "size").
		Values(apartment.OwnerID, apartment.Name, apartment.Location, apartment.Size).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apartment.ID,
		&createdAt,
		&updatedAt,
	)

	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apartment.CreatedAt = createdAt.Time
	apartment.UpdatedAt = updatedAt.Time

	return apartment, nil
}

// GetByID получает квартиру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(apartmentColumns...).
		From("apartments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	apartment, err := scanApartment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrApartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan apartment: %v", ErrScanRow, err)
	}

	return apartment, nil
}

// GetByOwnerAndName ищет квартиру владельца по названию
// Используется при импорте календаря: PRODID файла совпадает с названием квартиры
func (r *Repository) GetByOwnerAndName(ctx context.Context, ownerID int64, name string) (*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(apartmentColumns...).
		From("apartments").
		Where(squirrel.Eq{"owner_id": ownerID, "name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerAndName - build select query: %v", ErrBuildQuery, err)
	}

	apartment, err := scanApartment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrApartmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerAndName - scan apartment: %v", ErrScanRow, err)
	}

	return apartment, nil
}

// ListByOwner получает все квартиры владельца, отсортированные по названию
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(apartmentColumns...).
		From("apartments").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	apartments := make([]*domain.Apartment, 0)
	for rows.Next() {
		apartment, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner - scan row: %v", ErrScanRow, err)
		}
		apartments = append(apartments, apartment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - rows error: %v", ErrScanRow, err)
	}

	return apartments, nil
}

// Update обновляет название, адрес и размер квартиры
func (r *Repository) Update(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("apartments").
		Set("name", apartment.Name).
		Set("location", apartment.Location).
		Set("size", apartment.Size).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": apartment.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrApartmentNotFound
	}
	if isUniqueViolation(err) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	apartment.CreatedAt = createdAt.Time
	apartment.UpdatedAt = updatedAt.Time

	return apartment, nil
}

// Delete удаляет квартиру вместе с бронированиями (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("apartments").
		Where(squirrel.Eq{"id": id}).
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
		return ErrApartmentNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanApartment сканирует строку в квартиру (колонки apartmentColumns)
func scanApartment(row scanner) (*domain.Apartment, error) {
	var apartment domain.Apartment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&apartment.ID,
		&apartment.OwnerID,
		&apartment.Name,
		&apartment.Location,
		&apartment.Size,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	apartment.CreatedAt = createdAt.Time
	apartment.UpdatedAt = updatedAt.Time

	return &apartment, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
