package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/managely-hr/hr-backend-go/internal/domain/attendance"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

const attendanceColumns = `id, employee_id, date, check_in, check_out, status, created_at, updated_at`

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func toPgTime(t *attendance.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgtype.Time{Microseconds: t.Duration().Microseconds(), Valid: true}
}

func fromPgTime(t pgtype.Time) *attendance.TimeOfDay {
	if !t.Valid {
		return nil
	}
	tod := attendance.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
	return &tod
}

func scanAttendance(row pgx.Row, extra ...any) (attendance.Attendance, error) {
	var (
		a                 attendance.Attendance
		checkIn, checkOut pgtype.Time
	)
	dest := append([]any{&a.ID, &a.EmployeeID, &a.Date, &checkIn, &checkOut, &a.Status, &a.CreatedAt, &a.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	a.CheckIn = fromPgTime(checkIn)
	a.CheckOut = fromPgTime(checkOut)
	return a, nil
}

// GetOrCreate implements attendance.AttendanceRepository. The no-op update on
// conflict makes RETURNING yield the existing row in the same statement.
func (a *attendanceRepository) GetOrCreate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT uq_attendances_employee_date
		DO UPDATE SET employee_id = EXCLUDED.employee_id
		RETURNING ` + attendanceColumns

	record, err := scanAttendance(q.QueryRow(ctx, query, newID(), employeeID, date, attendance.StatusAbsent))
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get or create attendance: %w", err)
	}
	return record, nil
}

// RecordCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) RecordCheckIn(ctx context.Context, employeeID string, date time.Time, at attendance.TimeOfDay) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $1, status = $2, updated_at = NOW()
		WHERE employee_id = $3 AND date = $4 AND check_in IS NULL
		RETURNING ` + attendanceColumns

	record, err := scanAttendance(q.QueryRow(ctx, query, toPgTime(&at), attendance.StatusPresent, employeeID, date))
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, false, fmt.Errorf("failed to record check-in: %w", err)
	}

	current, err := a.getByEmployeeDate(ctx, employeeID, date)
	return current, false, err
}

// RecordCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) RecordCheckOut(ctx context.Context, employeeID string, date time.Time, at attendance.TimeOfDay) (attendance.Attendance, bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_out = $1, updated_at = NOW()
		WHERE employee_id = $2 AND date = $3 AND check_in IS NOT NULL AND check_out IS NULL
		RETURNING ` + attendanceColumns

	record, err := scanAttendance(q.QueryRow(ctx, query, toPgTime(&at), employeeID, date))
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, false, fmt.Errorf("failed to record check-out: %w", err)
	}

	current, err := a.getByEmployeeDate(ctx, employeeID, date)
	return current, false, err
}

func (a *attendanceRepository) getByEmployeeDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE employee_id = $1 AND date = $2`
	return scanAttendance(q.QueryRow(ctx, query, employeeID, date))
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	record, err := scanAttendance(q.QueryRow(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE id = $1`, id))
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance with id %s: %w", id, err)
	}
	return record, err
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $1, check_in = $2, check_out = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, record.Status, toPgTime(record.CheckIn), toPgTime(record.CheckOut), record.ID))
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance with id %s: %w", record.ID, err)
	}
	return updated, err
}

// ListByEmployeeBetween implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`
	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceWithEmployee, int64, error) {
	q := GetQuerier(ctx, a.db)

	var where whereBuilder
	if filter.EmployeeCode != "" {
		where.add("UPPER(e.employee_code) = UPPER(?)", filter.EmployeeCode)
	}
	if filter.Date != "" {
		where.add("a.date = ?::date", filter.Date)
	}
	if filter.Status != "" {
		where.add("a.status = ?", filter.Status)
	}

	from := `FROM attendances a JOIN employees e ON e.id = a.employee_id`

	var total int64
	if err := q.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) %s %s", from, where.clause()), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status, a.created_at, a.updated_at,
		       e.employee_code, e.full_name
		%s %s
		ORDER BY a.date DESC, e.employee_code
		LIMIT %s OFFSET %s`, from, where.clause(), where.next(filter.Limit), where.next(filter.Offset()))

	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.AttendanceWithEmployee, 0, filter.Limit)
	for rows.Next() {
		var item attendance.AttendanceWithEmployee
		record, err := scanAttendance(rows, &item.EmployeeCode, &item.EmployeeName)
		if err != nil {
			return nil, 0, err
		}
		item.Attendance = record
		records = append(records, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CountByDate implements attendance.AttendanceRepository. Only records with a
// check-in count as attendance.
func (a *attendanceRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var n int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1 AND check_in IS NOT NULL`, date).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}
	return n, nil
}

// CountByMonth implements attendance.AttendanceRepository. Keys are UTC
// midnights of the first day of each month.
func (a *attendanceRepository) CountByMonth(ctx context.Context, from, to time.Time) (map[time.Time]int64, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, `
		SELECT date_trunc('month', date)::date AS month, COUNT(*)
		FROM attendances
		WHERE date BETWEEN $1 AND $2
		GROUP BY month
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance by month: %w", err)
	}
	defer rows.Close()

	counts := make(map[time.Time]int64)
	for rows.Next() {
		var (
			month time.Time
			n     int64
		)
		if err := rows.Scan(&month, &n); err != nil {
			return nil, err
		}
		counts[time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)] = n
	}
	return counts, rows.Err()
}
