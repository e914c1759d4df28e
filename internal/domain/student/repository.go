package student

import "context"

type StudentRepository interface {
	GetByID(ctx context.Context, id string) (Student, error)
	GetByEmail(ctx context.Context, email string) (Student, error)
	ListActive(ctx context.Context) ([]Student, error)
}
