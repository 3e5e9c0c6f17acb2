package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/casetrack/case-management/internal/core/domain"
	"github.com/casetrack/case-management/internal/core/ports"
)

// personColumns is the canonical select list; COALESCE keeps the optional
// columns as empty strings on the Go side.
const personColumns = `
	id, first_name, last_name,
	COALESCE(middle_name, ''), COALESCE(date_of_birth, ''), COALESCE(nationality, ''),
	COALESCE(passport_number, ''), COALESCE(phone, ''), COALESCE(email, ''),
	COALESCE(address, ''), status, COALESCE(notes, ''),
	created_at, updated_at`

type PersonRepository struct {
	pool *pgxpool.Pool
}

func NewPersonRepository(pool *pgxpool.Pool) *PersonRepository {
	return &PersonRepository{pool: pool}
}

func (r *PersonRepository) List(ctx context.Context) ([]*domain.Person, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+personColumns+` FROM people ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	people := make([]*domain.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

func (r *PersonRepository) FindByID(ctx context.Context, id string) (*domain.Person, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+personColumns+` FROM people WHERE id = $1`, id)
	return scanPerson(row)
}

func (r *PersonRepository) Create(ctx context.Context, p *domain.Person) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO people (
			id, first_name, last_name, middle_name, date_of_birth,
			nationality, passport_number, phone, email, address,
			status, notes, created_at, updated_at
		) VALUES (
			$1, $2, $3, NULLIF($4, ''), NULLIF($5, ''),
			NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''),
			$11, NULLIF($12, ''), $13, $14
		)
	`, p.ID, p.FirstName, p.LastName, p.MiddleName, p.DateOfBirth,
		p.Nationality, p.PassportNumber, p.Phone, p.Email, p.Address,
		p.Status, p.Notes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

// Update builds a SET clause from the non-nil fields only, so untouched
// columns keep their values. updated_at is refreshed whenever at least one
// field changes.
func (r *PersonRepository) Update(ctx context.Context, id string, upd ports.PersonUpdate) (*domain.Person, error) {
	if upd.IsEmpty() {
		return r.FindByID(ctx, id)
	}

	setParts := make([]string, 0, 12)
	args := make([]any, 0, 13)
	// NOT NULL columns are assigned as-is; optional columns store empty
	// strings as NULL.
	set := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		setParts = append(setParts, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	setNullable := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		setParts = append(setParts, fmt.Sprintf("%s = NULLIF($%d, '')", column, len(args)))
	}
	set("first_name", upd.FirstName)
	set("last_name", upd.LastName)
	setNullable("middle_name", upd.MiddleName)
	setNullable("date_of_birth", upd.DateOfBirth)
	setNullable("nationality", upd.Nationality)
	setNullable("passport_number", upd.PassportNumber)
	setNullable("phone", upd.Phone)
	setNullable("email", upd.Email)
	setNullable("address", upd.Address)
	set("status", upd.Status)
	setNullable("notes", upd.Notes)

	setParts = append(setParts, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(
		`UPDATE people SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), len(args), personColumns,
	)
	return scanPerson(r.pool.QueryRow(ctx, query, args...))
}

func (r *PersonRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Person, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE people
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+personColumns, status, id)
	return scanPerson(row)
}

func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPersonNotFound
	}
	return nil
}

func scanPerson(row pgx.Row) (*domain.Person, error) {
	var p domain.Person
	err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName,
		&p.MiddleName, &p.DateOfBirth, &p.Nationality,
		&p.PassportNumber, &p.Phone, &p.Email,
		&p.Address, &p.Status, &p.Notes,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPersonNotFound
		}
		return nil, fmt.Errorf("scan person: %w", err)
	}
	return &p, nil
}
