package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/payroll"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

const payrollColumns = `p.id, p.user_id, p.month, p.basic_salary, p.allowances,
		p.deductions, p.net_salary, p.status, p.payment_date, p.created_at, u.name`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayroll(row pgx.Row) (payroll.PayrollRecord, error) {
	var p payroll.PayrollRecord
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Month,
		&p.BasicSalary,
		&p.Allowances,
		&p.Deductions,
		&p.NetSalary,
		&p.Status,
		&p.PaymentDate,
		&p.CreatedAt,
		&p.UserName,
	)
	return p, err
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, p payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payrolls (user_id, month, basic_salary, allowances, deductions, net_salary, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, month, basic_salary, allowances, deductions,
			net_salary, status, payment_date, created_at
	`

	var created payroll.PayrollRecord
	err := q.QueryRow(ctx, query,
		p.UserID, p.Month, p.BasicSalary, p.Allowances, p.Deductions, p.NetSalary, p.Status,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Month,
		&created.BasicSalary,
		&created.Allowances,
		&created.Deductions,
		&created.NetSalary,
		&created.Status,
		&created.PaymentDate,
		&created.CreatedAt,
	)
	if err != nil {
		return payroll.PayrollRecord{}, err
	}
	return created, nil
}

// ListByUser implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payrolls p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
		ORDER BY p.month DESC
	`, payrollColumns)

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payrolls p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.month DESC, u.name
	`, payrollColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayrolls(rows)
}

func collectPayrolls(rows pgx.Rows) ([]payroll.PayrollRecord, error) {
	var out []payroll.PayrollRecord
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkPaid implements payroll.PayrollRepository. Guarded on
// status='pending' so a record is paid at most once.
func (r *payrollRepositoryImpl) MarkPaid(ctx context.Context, id string, paymentDate time.Time) (payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payrolls
		SET status = 'paid', payment_date = $1
		WHERE id = $2 AND status = 'pending'
		RETURNING id, user_id, month, basic_salary, allowances, deductions,
			net_salary, status, payment_date, created_at
	`

	var updated payroll.PayrollRecord
	err := q.QueryRow(ctx, query, paymentDate, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Month,
		&updated.BasicSalary,
		&updated.Allowances,
		&updated.Deductions,
		&updated.NetSalary,
		&updated.Status,
		&updated.PaymentDate,
		&updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if checkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payrolls WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
				return payroll.PayrollRecord{}, checkErr
			}
			if !exists {
				return payroll.PayrollRecord{}, payroll.ErrPayrollNotFound
			}
			return payroll.PayrollRecord{}, payroll.ErrPayrollAlreadyPaid
		}
		return payroll.PayrollRecord{}, err
	}
	return updated, nil
}
