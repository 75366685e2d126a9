package payroll

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/managely-hr/hr-backend-go/internal/domain/employee"
	"github.com/managely-hr/hr-backend-go/internal/domain/payroll"
	"github.com/managely-hr/hr-backend-go/internal/service/file"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
	fileService file.FileService
	location    *time.Location
	now         func() time.Time
}

// NewPayrollService builds the service; loc decides which calendar year
// year-to-date earnings cover.
func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository, fileService file.FileService, loc *time.Location) payroll.PayrollService {
	if loc == nil {
		loc = time.UTC
	}
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepo,
		EmployeeRepository: employeeRepo,
		fileService:        fileService,
		location:           loc,
		now:                time.Now,
	}
}

func (s *PayrollServiceImpl) currentYear() int {
	return s.now().In(s.location).Year()
}

func logMismatch(p payroll.Payroll) {
	if p.NetPayMismatch() {
		slog.Warn("payroll net pay differs from gross minus deductions",
			"payroll_id", p.ID,
			"employee_id", p.EmployeeID,
			"month", p.Month.Format("2006-01"),
			"net_pay", p.NetPay.StringFixed(2),
			"computed", p.ComputedNetPay().StringFixed(2),
		)
	}
}

// Create implements payroll.PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.PayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.PayrollResponse{}, err
	}

	created, err := s.PayrollRepository.Create(ctx, req.ToEntity())
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	logMismatch(created)
	return payroll.ToResponse(created), nil
}

// Update implements payroll.PayrollService.
func (s *PayrollServiceImpl) Update(ctx context.Context, id string, req payroll.PayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	if req.EmployeeID != existing.EmployeeID {
		if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
			return payroll.PayrollResponse{}, err
		}
	}

	record := req.ToEntity()
	record.ID = existing.ID
	record.PayslipPath = existing.PayslipPath

	updated, err := s.PayrollRepository.Update(ctx, record)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	logMismatch(updated)
	return payroll.ToResponse(updated), nil
}

// Delete implements payroll.PayrollService.
func (s *PayrollServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.PayrollRepository.Delete(ctx, id); err != nil {
		return err
	}

	if existing.PayslipPath != nil {
		if err := s.fileService.DeleteFile(ctx, *existing.PayslipPath); err != nil {
			slog.Warn("failed to delete payslip file", "payroll_id", id, "path", *existing.PayslipPath, "error", err)
		}
	}
	return nil
}

// GetByID implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetByID(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return payroll.ToResponse(p), nil
}

// List implements payroll.PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	filter.Normalize()

	records, total, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll: %w", err)
	}

	resp := payroll.ListPayrollResponse{
		Payrolls: make([]payroll.PayrollResponse, 0, len(records)),
		Total:    total,
		Page:     filter.Page,
		Limit:    filter.Limit,
	}
	for _, r := range records {
		item := payroll.ToResponse(r.Payroll)
		item.EmployeeCode = r.EmployeeCode
		item.EmployeeName = r.EmployeeName
		resp.Payrolls = append(resp.Payrolls, item)
	}
	return resp, nil
}

// AttachPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) AttachPayslip(ctx context.Context, id string, r io.Reader, filename string) (payroll.PayrollResponse, error) {
	existing, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	path, err := s.fileService.UploadPayslip(ctx, existing.EmployeeID, r, filename)
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedFileType) {
			return payroll.PayrollResponse{}, errors.Join(payroll.ErrUnsupportedPayslipType, err)
		}
		return payroll.PayrollResponse{}, err
	}
	if err := s.PayrollRepository.UpdatePayslipPath(ctx, id, path); err != nil {
		if delErr := s.fileService.DeleteFile(ctx, path); delErr != nil {
			slog.Warn("failed to delete orphaned payslip", "payroll_id", id, "path", path, "error", delErr)
		}
		return payroll.PayrollResponse{}, fmt.Errorf("failed to save payslip: %w", err)
	}

	if existing.PayslipPath != nil && *existing.PayslipPath != path {
		if err := s.fileService.DeleteFile(ctx, *existing.PayslipPath); err != nil {
			slog.Warn("failed to delete previous payslip", "payroll_id", id, "error", err)
		}
	}

	existing.PayslipPath = &path
	return payroll.ToResponse(existing), nil
}

// MyPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) MyPayroll(ctx context.Context, employeeID string) (payroll.MyPayrollResponse, error) {
	records, err := s.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return payroll.MyPayrollResponse{}, fmt.Errorf("failed to list payroll: %w", err)
	}

	resp := payroll.MyPayrollResponse{
		Records:    make([]payroll.PayrollResponse, 0, len(records)),
		YTDEarning: payroll.YearToDate(records, s.currentYear()),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, payroll.ToResponse(r))
	}
	// Records come newest first.
	if len(resp.Records) > 0 {
		current := resp.Records[0]
		resp.Current = &current
	}
	return resp, nil
}

// YearToDate implements payroll.PayrollService.
func (s *PayrollServiceImpl) YearToDate(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	records, err := s.PayrollRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list payroll: %w", err)
	}
	return payroll.YearToDate(records, s.currentYear()), nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, id string, employeeID string) (payroll.Payslip, error) {
	p, err := s.PayrollRepository.GetByID(ctx, id)
	if err != nil {
		return payroll.Payslip{}, err
	}
	// Someone else's payslip looks the same as a missing one.
	if employeeID != "" && p.EmployeeID != employeeID {
		return payroll.Payslip{}, payroll.ErrPayrollRecordNotFound
	}

	e, err := s.EmployeeRepository.GetByID(ctx, p.EmployeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	base := fmt.Sprintf("payslip-%s-%s", e.EmployeeCode, p.Month.Format("2006-01"))

	if p.PayslipPath != nil {
		rc, err := s.fileService.Open(ctx, *p.PayslipPath)
		if err != nil {
			return payroll.Payslip{}, errors.Join(payroll.ErrPayslipNotAvailable, err)
		}
		defer rc.Close()

		content, err := io.ReadAll(rc)
		if err != nil {
			return payroll.Payslip{}, fmt.Errorf("failed to read payslip: %w", err)
		}
		ext := strings.ToLower(filepath.Ext(*p.PayslipPath))
		return payroll.Payslip{
			Filename:    base + ext,
			ContentType: file.ContentType(*p.PayslipPath),
			Content:     content,
		}, nil
	}

	return payroll.Payslip{
		Filename:    base + ".txt",
		ContentType: "text/plain; charset=utf-8",
		Content:     RenderPayslip(e, p),
	}, nil
}

// RenderPayslip produces the plain-text slip offered when no file was uploaded.
func RenderPayslip(e employee.Employee, p payroll.Payroll) []byte {
	printer := message.NewPrinter(language.English)
	amount := func(d decimal.Decimal) string {
		return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
	}

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "PAYSLIP")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Employee\t%s\n", e.FullName)
	fmt.Fprintf(w, "Employee code\t%s\n", e.EmployeeCode)
	if e.Department != nil {
		fmt.Fprintf(w, "Department\t%s\n", *e.Department)
	}
	fmt.Fprintf(w, "Period\t%s\n", p.Month.Format("January 2006"))
	fmt.Fprintln(w, "\t")
	fmt.Fprintf(w, "Gross salary\t%s\n", amount(p.GrossSalary))
	fmt.Fprintf(w, "Deductions\t%s\n", amount(p.Deductions))
	fmt.Fprintf(w, "Net pay\t%s\n", amount(p.NetPay))
	w.Flush()

	return buf.Bytes()
}
