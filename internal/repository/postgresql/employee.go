package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
)

const employeeColumns = `
	id, employee_code, full_name, phone, email, department, designation, role,
	address, emergency_contact, joining_date, avatar_path, password_hash,
	first_login, is_active, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.EmployeeCode,
		&e.FullName,
		&e.Phone,
		&e.Email,
		&e.Department,
		&e.Designation,
		&e.Role,
		&e.Address,
		&e.EmergencyContact,
		&e.JoiningDate,
		&e.AvatarPath,
		&e.PasswordHash,
		&e.FirstLogin,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee with id %s: %w", id, err)
	}
	return e, err
}

// GetByEmployeeCode implements employee.EmployeeRepository. Codes match
// case-insensitively.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE UPPER(employee_code) = UPPER($1)`
	e, err := scanEmployee(q.QueryRow(ctx, query, employeeCode))
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, full_name, phone, email, department, designation, role,
			address, emergency_contact, joining_date, password_hash, first_login, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		newID(),
		newEmployee.EmployeeCode,
		newEmployee.FullName,
		newEmployee.Phone,
		newEmployee.Email,
		newEmployee.Department,
		newEmployee.Designation,
		newEmployee.Role,
		newEmployee.Address,
		newEmployee.EmergencyContact,
		newEmployee.JoiningDate,
		newEmployee.PasswordHash,
		newEmployee.FirstLogin,
		newEmployee.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err, "employees_employee_code_key") {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	var where whereBuilder
	if filter.Query != "" {
		where.add("(full_name ILIKE ? OR employee_code ILIKE ? OR email ILIKE ? OR phone ILIKE ?)", "%"+filter.Query+"%")
	}
	if filter.Department != "" {
		where.add("department = ?", filter.Department)
	}

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees %s", where.clause())
	if err := q.QueryRow(ctx, countQuery, where.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	listQuery := fmt.Sprintf("SELECT %s FROM employees %s ORDER BY employee_code LIMIT %s OFFSET %s",
		employeeColumns, where.clause(), where.next(filter.Limit), where.next(filter.Offset()))

	rows, err := q.Query(ctx, listQuery, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0, filter.Limit)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// ListDepartments implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListDepartments(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT department FROM employees
		WHERE department IS NOT NULL AND department <> ''
		ORDER BY department
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Update implements employee.EmployeeRepository. Empty strings clear
// optional columns.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	updates := map[string]any{}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	optional := map[string]*string{
		"email":             req.Email,
		"department":        req.Department,
		"designation":       req.Designation,
		"role":              req.Role,
		"address":           req.Address,
		"emergency_contact": req.EmergencyContact,
	}
	for col, val := range optional {
		if val != nil {
			updates[col] = nullable(strings.TrimSpace(*val))
		}
	}
	if req.JoiningDate != nil {
		updates["joining_date"] = req.ParsedJoiningDate()
	}

	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}

	setClauses := make([]string, 0, len(updates)+1)
	args := make([]any, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d RETURNING %s", strings.Join(setClauses, ", "), i, employeeColumns)
	args = append(args, id)

	updated, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %s: %w", id, err)
	}
	return updated, err
}

// UpdatePassword implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdatePassword(ctx context.Context, id string, passwordHash string, firstLogin bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET password_hash = $1, first_login = $2, updated_at = NOW()
		WHERE id = $3
	`, passwordHash, firstLogin, id)
	if err != nil {
		return fmt.Errorf("failed to update employee password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateAvatar implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateAvatar(ctx context.Context, id string, avatarPath string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE employees SET avatar_path = $1, updated_at = NOW() WHERE id = $2`, avatarPath, id)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// SetActive implements employee.EmployeeRepository. Rows already in the
// requested state are not counted.
func (r *employeeRepositoryImpl) SetActive(ctx context.Context, ids []string, active bool) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET is_active = $1, updated_at = NOW()
		WHERE id = ANY($2::uuid[]) AND is_active <> $1
	`, active, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to update employee status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountActive implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return n, nil
}

// ListNames implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, `SELECT id, full_name FROM employees WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		names[id] = name
	}
	return names, rows.Err()
}

type codeCounterRepositoryImpl struct {
	db *database.DB
}

func NewCodeCounterRepository(db *database.DB) employee.CodeCounterRepository {
	return &codeCounterRepositoryImpl{db: db}
}

// NextSequence implements employee.CodeCounterRepository. The upsert holds
// the row lock until the surrounding transaction ends, so concurrent creates
// receive distinct values.
func (r *codeCounterRepositoryImpl) NextSequence(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	var next int
	err := q.QueryRow(ctx, `
		INSERT INTO employee_code_counters (year, last_value) VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = employee_code_counters.last_value + 1
		RETURNING last_value
	`, year).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate employee code: %w", err)
	}
	return next, nil
}
