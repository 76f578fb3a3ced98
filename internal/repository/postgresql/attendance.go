package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orbitdesk/backoffice-go/internal/domain/attendance"
	"github.com/orbitdesk/backoffice-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, status, work_hours,
	is_late, is_early_leave, check_in_lat, check_in_lng,
	regularization_status, regularization_reason, regularization_comment,
	notes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.WorkHours, &att.IsLate, &att.IsEarlyLeave,
		&att.CheckInLatitude, &att.CheckInLongitude,
		&att.RegularizationStatus, &att.RegularizationReason, &att.RegularizationComment,
		&att.Notes, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// isUniqueViolation reports whether err is a unique-constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Create implements attendance.AttendanceRepository.
//
// The attendances table is unique on (employee_id, date); two concurrent
// check-ins race on the index and the loser surfaces as ErrAlreadyCheckedIn.
func (r *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status, work_hours,
			is_late, is_early_leave, check_in_lat, check_in_lng, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	record.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.Status,
		record.WorkHours,
		record.IsLate,
		record.IsEarlyLeave,
		record.CheckInLatitude,
		record.CheckInLongitude,
		record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`

	att, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}
	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2 LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &att, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
//
// The WHERE clause re-checks the precondition so a concurrent check-out
// cannot be overwritten (one writer wins, the other gets ErrAlreadyCheckedOut).
func (r *attendanceRepository) SetCheckOut(ctx context.Context, id, checkOut string, workHours float64, isEarlyLeave bool, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $2, work_hours = $3, is_early_leave = $4, status = $5, updated_at = NOW()
		WHERE id = $1 AND check_out IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, checkOut, workHours, isEarlyLeave, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}
	return att, nil
}

// Upsert implements attendance.AttendanceRepository.
//
// Administrative override: status is always overwritten, check-in/out times
// and notes only when supplied. Derived flags are left untouched on update.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in, check_out, status, work_hours, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			status     = EXCLUDED.status,
			check_in   = COALESCE(EXCLUDED.check_in, attendances.check_in),
			check_out  = COALESCE(EXCLUDED.check_out, attendances.check_out),
			notes      = CASE WHEN EXCLUDED.notes <> '' THEN EXCLUDED.notes ELSE attendances.notes END,
			updated_at = NOW()
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query,
		uuid.NewString(),
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.Status,
		record.WorkHours,
		record.Notes,
	))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}
	return att, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to *string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1`
	args := []interface{}{employeeID}
	argIdx := 2

	if from != nil && *from != "" {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *from)
		argIdx++
	}
	if to != nil && *to != "" {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *to)
		argIdx++
	}
	query += " ORDER BY date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, false)
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.work_hours,
			a.is_late, a.is_early_leave, a.check_in_lat, a.check_in_lng,
			a.regularization_status, a.regularization_reason, a.regularization_comment,
			a.notes, a.created_at, a.updated_at,
			e.full_name AS employee_name,
			e.employee_code AS employee_code,
			e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeIDs != nil {
		query += fmt.Sprintf(" AND a.employee_id = ANY($%d)", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		query += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.From != nil && *filter.From != "" {
		query += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil && *filter.To != "" {
		query += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}
	query += " ORDER BY a.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, true)
}

// SubmitRegularization implements attendance.AttendanceRepository.
func (r *attendanceRepository) SubmitRegularization(ctx context.Context, id, reason string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET regularization_status = 'pending', regularization_reason = $2, updated_at = NOW()
		WHERE id = $1 AND regularization_status IS NULL
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, reason))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The caller checked the record exists, so the guard failing
			// means another request got there first.
			return attendance.Attendance{}, attendance.ErrAlreadySubmitted
		}
		return attendance.Attendance{}, fmt.Errorf("failed to submit regularization: %w", err)
	}
	return att, nil
}

// ReviewRegularization implements attendance.AttendanceRepository.
func (r *attendanceRepository) ReviewRegularization(ctx context.Context, id string, decision attendance.RegularizationStatus, comment string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET regularization_status = $2, regularization_comment = $3, updated_at = NOW()
		WHERE id = $1 AND regularization_status = 'pending'
		RETURNING ` + attendanceColumns

	att, err := scanAttendance(q.QueryRow(ctx, query, id, decision, comment))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyReviewed
		}
		return attendance.Attendance{}, fmt.Errorf("failed to review regularization: %w", err)
	}
	return att, nil
}

// ListRegularizations implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRegularizations(ctx context.Context, status *attendance.RegularizationStatus) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.work_hours,
			a.is_late, a.is_early_leave, a.check_in_lat, a.check_in_lng,
			a.regularization_status, a.regularization_reason, a.regularization_comment,
			a.notes, a.created_at, a.updated_at,
			e.full_name AS employee_name,
			e.employee_code AS employee_code,
			e.department AS employee_department
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.regularization_status IS NOT NULL
	`
	args := []interface{}{}
	if status != nil {
		query += " AND a.regularization_status = $1"
		args = append(args, *status)
	}
	query += " ORDER BY a.date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list regularizations: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows, true)
}

// MonthlyReport implements attendance.AttendanceRepository.
func (r *attendanceRepository) MonthlyReport(ctx context.Context, from, to string) ([]attendance.MonthlyReportRow, error) {
	q := GetQuerier(ctx, r.db)

	// LEFT JOIN so employees without records in the window still report zeros.
	query := `
		SELECT
			e.id, e.full_name, e.employee_code, e.department,
			COUNT(a.id) FILTER (WHERE a.status = 'present')  AS present,
			COUNT(a.id) FILTER (WHERE a.status = 'absent')   AS absent,
			COUNT(a.id) FILTER (WHERE a.status = 'half-day') AS half_day,
			COUNT(a.id)                                      AS total_days,
			COALESCE(SUM(a.work_hours), 0)                   AS total_hours
		FROM employees e
		LEFT JOIN attendances a
			ON a.employee_id = e.id AND a.date >= $1 AND a.date <= $2
		GROUP BY e.id, e.full_name, e.employee_code, e.department
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly report: %w", err)
	}
	defer rows.Close()

	var report []attendance.MonthlyReportRow
	for rows.Next() {
		var row attendance.MonthlyReportRow
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeName, &row.EmployeeCode, &row.EmployeeDepartment,
			&row.Present, &row.Absent, &row.HalfDay, &row.TotalDays, &row.TotalHours,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report rows: %w", err)
	}
	return report, nil
}

func collectAttendances(rows pgx.Rows, withEmployee bool) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		dest := []interface{}{
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.WorkHours, &att.IsLate, &att.IsEarlyLeave,
			&att.CheckInLatitude, &att.CheckInLongitude,
			&att.RegularizationStatus, &att.RegularizationReason, &att.RegularizationComment,
			&att.Notes, &att.CreatedAt, &att.UpdatedAt,
		}
		if withEmployee {
			dest = append(dest, &att.EmployeeName, &att.EmployeeCode, &att.EmployeeDepartment)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}
	return records, nil
}
