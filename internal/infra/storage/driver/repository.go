package driver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/pkg/dbmetrics"
	"github.com/fleetops/TFS-ShiftService/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

// Repository репозиторий для работы с учетными записями
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория учетных записей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую учетную запись
func (r *Repository) Create(ctx context.Context, d *domain.Driver) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("drivers").
		Columns("email", "full_name", "role", "employee_type", "password_hash").
		Values(d.Email, d.FullName, d.Role, d.EmployeeType, d.PasswordHash).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает учетную запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByEmail получает учетную запись по email (для аутентификации)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Driver, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

// ListByRole получает учетные записи с указанной ролью, отсортированные по имени
func (r *Repository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectColumns().
		Where(squirrel.Eq{"role": role}).
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRole - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	drivers := make([]*domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByRole - scan row: %v", ErrScanRow, err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByRole - rows error: %v", ErrScanRow, err)
	}

	return drivers, nil
}

// Update обновляет имя и тип занятости учетной записи.
// Email и роль после создания не меняются.
func (r *Repository) Update(ctx context.Context, id int64, fullName, employeeType string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("drivers").
		Set("full_name", fullName).
		Set("employee_type", employeeType).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDriverNotFound
	}

	return nil
}

// Delete удаляет учетную запись
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("drivers").
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
		return ErrDriverNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Driver, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectColumns().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	d, err := scanDriver(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan driver: %v", ErrScanRow, op, err)
	}

	return d, nil
}

func (r *Repository) selectColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id", "email", "full_name", "role", "employee_type", "password_hash",
		"created_at", "updated_at",
	).From("drivers")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDriver(row rowScanner) (*domain.Driver, error) {
	var d domain.Driver
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID, &d.Email, &d.FullName, &d.Role, &d.EmployeeType, &d.PasswordHash,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
