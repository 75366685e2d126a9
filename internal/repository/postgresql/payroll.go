package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

// Amounts travel as text so NUMERIC precision survives the round trip.
const payrollColumns = `
	p.id, p.employee_id, p.month, p.gross_salary::text, p.deductions::text, p.net_pay::text,
	p.payslip_path, p.created_at, p.updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayroll(row pgx.Row, extra ...any) (payroll.Payroll, error) {
	var (
		p                      payroll.Payroll
		gross, deductions, net string
	)
	dest := append([]any{&p.ID, &p.EmployeeID, &p.Month, &gross, &deductions, &net, &p.PayslipPath, &p.CreatedAt, &p.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Payroll{}, err
	}

	var err error
	if p.GrossSalary, err = decimal.NewFromString(gross); err != nil {
		return payroll.Payroll{}, fmt.Errorf("invalid gross_salary %q: %w", gross, err)
	}
	if p.Deductions, err = decimal.NewFromString(deductions); err != nil {
		return payroll.Payroll{}, fmt.Errorf("invalid deductions %q: %w", deductions, err)
	}
	if p.NetPay, err = decimal.NewFromString(net); err != nil {
		return payroll.Payroll{}, fmt.Errorf("invalid net_pay %q: %w", net, err)
	}
	return p, nil
}

func mapPayrollWriteErr(err error, action string) error {
	if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return err
	}
	if isUniqueViolation(err, "uq_payrolls_employee_month") {
		return payroll.ErrPayrollRecordAlreadyExists
	}
	return fmt.Errorf("failed to %s payroll record: %w", action, err)
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls AS p (id, employee_id, month, gross_salary, deductions, net_pay, payslip_path)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		newID(),
		record.EmployeeID,
		record.Month,
		record.GrossSalary.StringFixed(2),
		record.Deductions.StringFixed(2),
		record.NetPay.StringFixed(2),
		record.PayslipPath,
	))
	if err != nil {
		return payroll.Payroll{}, mapPayrollWriteErr(err, "create")
	}
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPayroll(q.QueryRow(ctx, `SELECT `+payrollColumns+` FROM payrolls p WHERE p.id = $1`, id))
	if err != nil && !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record with id %s: %w", id, err)
	}
	return p, err
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls AS p
		SET employee_id = $1, month = $2, gross_salary = $3::numeric, deductions = $4::numeric,
		    net_pay = $5::numeric, updated_at = NOW()
		WHERE p.id = $6
		RETURNING ` + payrollColumns

	updated, err := scanPayroll(q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Month,
		record.GrossSalary.StringFixed(2),
		record.Deductions.StringFixed(2),
		record.NetPay.StringFixed(2),
		record.ID,
	))
	if err != nil {
		return payroll.Payroll{}, mapPayrollWriteErr(err, "update")
	}
	return updated, nil
}

// Delete implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+payrollColumns+` FROM payrolls p WHERE p.employee_id = $1 ORDER BY p.month DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.PayrollWithEmployee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	if filter.EmployeeID != "" {
		where.add("p.employee_id = ?", filter.EmployeeID)
	}

	from := `FROM payrolls p JOIN employees e ON e.id = p.employee_id`

	var total int64
	if err := q.QueryRow(ctx, fmt.Sprintf("SELECT COUNT(*) %s %s", from, where.clause()), where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.employee_code, e.full_name
		%s %s
		ORDER BY p.month DESC, e.employee_code
		LIMIT %s OFFSET %s`, payrollColumns, from, where.clause(), where.next(filter.Limit), where.next(filter.Offset()))

	rows, err := q.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	records := make([]payroll.PayrollWithEmployee, 0, filter.Limit)
	for rows.Next() {
		var item payroll.PayrollWithEmployee
		p, err := scanPayroll(rows, &item.EmployeeCode, &item.EmployeeName)
		if err != nil {
			return nil, 0, err
		}
		item.Payroll = p
		records = append(records, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// UpdatePayslipPath implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePayslipPath(ctx context.Context, id string, path string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE payrolls SET payslip_path = $1, updated_at = NOW() WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("failed to update payslip path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}
