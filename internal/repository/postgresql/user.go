package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nimbushr/nimbus-backend-go/internal/domain/user"
	"github.com/nimbushr/nimbus-backend-go/internal/pkg/database"
)

const userColumns = `id, employee_code, email, password_hash, role, is_temp_password,
		name, position, department, phone, address, join_date, salary,
		date_of_birth, nationality, gender, marital_status,
		bank_account_number, bank_name, bank_ifsc_code, bank_pan_number,
		created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.EmployeeCode,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.IsTempPassword,
		&u.Name,
		&u.Position,
		&u.Department,
		&u.Phone,
		&u.Address,
		&u.JoinDate,
		&u.Salary,
		&u.DateOfBirth,
		&u.Nationality,
		&u.Gender,
		&u.MaritalStatus,
		&u.BankAccountNumber,
		&u.BankName,
		&u.BankIFSCCode,
		&u.BankPANNumber,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByIdentifier implements user.UserRepository. The identifier is
// matched against email and employee_code, both case-insensitive.
func (r *userRepositoryImpl) GetByIdentifier(ctx context.Context, identifier string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE LOWER(email) = LOWER($1) OR LOWER(employee_code) = LOWER($1)
	`, userColumns)
	u, err := scanUser(q.QueryRow(ctx, query, identifier))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email) = LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO users (
			employee_code, email, password_hash, role, is_temp_password,
			name, position, department, phone, address, join_date, salary,
			date_of_birth, nationality, gender, marital_status,
			bank_account_number, bank_name, bank_ifsc_code, bank_pan_number
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20
		)
		RETURNING %s
	`, userColumns)

	created, err := scanUser(q.QueryRow(ctx, query,
		newUser.EmployeeCode,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.IsTempPassword,
		newUser.Name,
		newUser.Position,
		newUser.Department,
		newUser.Phone,
		newUser.Address,
		newUser.JoinDate,
		newUser.Salary,
		newUser.DateOfBirth,
		newUser.Nationality,
		newUser.Gender,
		newUser.MaritalStatus,
		newUser.BankAccountNumber,
		newUser.BankName,
		newUser.BankIFSCCode,
		newUser.BankPANNumber,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch {
			case strings.Contains(pgErr.ConstraintName, "employee_code"):
				return user.User{}, user.ErrEmployeeCodeExists
			case strings.Contains(pgErr.ConstraintName, "email"):
				return user.User{}, user.ErrEmailExists
			}
		}
		return user.User{}, err
	}
	return created, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at`, userColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateProfile implements user.UserRepository. Only non-nil fields of
// the patch are written.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	idx := 2

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Address != nil {
		addSet("address", *req.Address)
	}
	if req.DateOfBirth != nil {
		addSet("date_of_birth", *req.DateOfBirth)
	}
	if req.Nationality != nil {
		addSet("nationality", *req.Nationality)
	}
	if req.Gender != nil {
		addSet("gender", *req.Gender)
	}
	if req.MaritalStatus != nil {
		addSet("marital_status", *req.MaritalStatus)
	}
	if req.AccountNumber != nil {
		addSet("bank_account_number", *req.AccountNumber)
	}
	if req.BankName != nil {
		addSet("bank_name", *req.BankName)
	}
	if req.IFSCCode != nil {
		addSet("bank_ifsc_code", *req.IFSCCode)
	}
	if req.PANNumber != nil {
		addSet("bank_pan_number", *req.PANNumber)
	}
	if req.Position != nil {
		addSet("position", *req.Position)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Salary != nil {
		addSet("salary", *req.Salary)
	}
	if req.JoinDate != nil {
		addSet("join_date", *req.JoinDate)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		joinClauses(setClauses), userColumns)

	updated, err := scanUser(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return updated, nil
}

func joinClauses(clauses []string) string {
	out := ""
	for i, c := range clauses {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, is_temp_password = FALSE, updated_at = NOW()
		WHERE id = $2
	`, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// AddDocument implements user.UserRepository.
func (r *userRepositoryImpl) AddDocument(ctx context.Context, doc user.Document) (user.Document, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_documents (user_id, name, url, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, name, url, type, uploaded_at
	`

	var created user.Document
	err := q.QueryRow(ctx, query, doc.UserID, doc.Name, doc.URL, doc.Type).Scan(
		&created.ID,
		&created.UserID,
		&created.Name,
		&created.URL,
		&created.Type,
		&created.UploadedAt,
	)
	if err != nil {
		return user.Document{}, err
	}
	return created, nil
}

// ListDocuments implements user.UserRepository.
func (r *userRepositoryImpl) ListDocuments(ctx context.Context, userID string) ([]user.Document, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, user_id, name, url, type, uploaded_at
		FROM user_documents
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []user.Document
	for rows.Next() {
		var d user.Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.URL, &d.Type, &d.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
