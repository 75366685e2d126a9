package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/leave"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.number_of_days, lr.start_date, lr.end_date,
	lr.reason, lr.status, lr.decided_by, lr.decided_at, lr.created_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row, extra ...any) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	dest := append([]any{
		&lr.ID,
		&lr.EmployeeID,
		&lr.LeaveType,
		&lr.NumberOfDays,
		&lr.StartDate,
		&lr.EndDate,
		&lr.Reason,
		&lr.Status,
		&lr.DecidedBy,
		&lr.DecidedAt,
		&lr.CreatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return lr, nil
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests AS lr (id, employee_id, leave_type, number_of_days, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		newID(),
		request.EmployeeID,
		request.LeaveType,
		request.NumberOfDays,
		request.StartDate,
		request.EndDate,
		request.Reason,
		leave.StatusPending,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	lr, err := scanLeaveRequest(q.QueryRow(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests lr WHERE lr.id = $1`, id))
	if err != nil && !errors.Is(err, leave.ErrLeaveRequestNotFound) {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request with id %s: %w", id, err)
	}
	return lr, err
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.created_at DESC
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	return requests, rows.Err()
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequestWithEmployee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	if filter.Status != "" {
		where.add("lr.status = ?", filter.Status)
	}

	from := `FROM leave_requests lr JOIN employees e ON e.id = lr.employee_id`

	var total int64
	if err := q.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) %s %s", from, where.clause()), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.employee_code, e.full_name
		%s %s
		ORDER BY lr.created_at DESC
		LIMIT %s OFFSET %s`, leaveRequestColumns, from, where.clause(), where.next(filter.Limit), where.next(filter.Offset()))

	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequestWithEmployee, 0, filter.Limit)
	for rows.Next() {
		var item leave.LeaveRequestWithEmployee
		lr, err := scanLeaveRequest(rows, &item.EmployeeCode, &item.EmployeeName)
		if err != nil {
			return nil, 0, err
		}
		item.LeaveRequest = lr
		requests = append(requests, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// TransitionFromPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) TransitionFromPending(ctx context.Context, id string, status leave.Status, decidedBy string) (leave.LeaveRequest, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests AS lr
		SET status = $1, decided_by = $2, decided_at = NOW()
		WHERE lr.id = $3 AND lr.status = $4
		RETURNING ` + leaveRequestColumns

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, status, nullable(decidedBy), id, leave.StatusPending))
	if err == nil {
		return lr, true, nil
	}
	if !errors.Is(err, leave.ErrLeaveRequestNotFound) {
		return leave.LeaveRequest{}, false, fmt.Errorf("failed to update leave request: %w", err)
	}

	// Either the request does not exist or it has already been decided.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, false, err
	}
	return current, false, nil
}

// CountByStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context) (map[leave.Status]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT status, COUNT(*) FROM leave_requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[leave.Status]int64, len(leave.Statuses))
	for _, s := range leave.Statuses {
		counts[s] = 0
	}
	for rows.Next() {
		var (
			status leave.Status
			n      int64
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
