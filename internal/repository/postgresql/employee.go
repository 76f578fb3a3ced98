package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/orbitdesk/backoffice-go/internal/domain/employee"
	"github.com/orbitdesk/backoffice-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, employee_code, department, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FullName, &e.EmployeeCode, &e.Department, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return e, nil
}

// ListIDs implements employee.EmployeeRepository.
func (r *employeeRepository) ListIDs(ctx context.Context, employeeID, department *string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id FROM employees WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if employeeID != nil && *employeeID != "" {
		query += fmt.Sprintf(" AND id = $%d", argIdx)
		args = append(args, *employeeID)
		argIdx++
	}
	if department != nil && *department != "" {
		query += fmt.Sprintf(" AND department = $%d", argIdx)
		args = append(args, *department)
		argIdx++
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee ids: %w", err)
	}
	return ids, nil
}
