package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ojtportal/ojt-backend-go/internal/domain/student"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/database"
)

type studentRepository struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `
	id, email, password_hash, google_id, full_name, school, host_office,
	role, required_hours, start_date, active, created_at, updated_at
`

func scanStudent(row pgx.Row) (student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID, &s.Email, &s.PasswordHash, &s.GoogleID, &s.FullName, &s.School, &s.HostOffice,
		&s.Role, &s.RequiredHours, &s.StartDate, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// GetByID implements student.StudentRepository.
func (r *studentRepository) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanStudent(q.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by id: %w", err)
	}
	return s, nil
}

// GetByEmail implements student.StudentRepository.
func (r *studentRepository) GetByEmail(ctx context.Context, email string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanStudent(q.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE LOWER(email) = LOWER($1)`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student by email: %w", err)
	}
	return s, nil
}

// ListActive implements student.StudentRepository.
func (r *studentRepository) ListActive(ctx context.Context) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+studentColumns+` FROM students WHERE active ORDER BY full_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
