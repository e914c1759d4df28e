package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ojtportal/ojt-backend-go/internal/pkg/database"
)

// GetQuerier returns the transaction carried on ctx, or the pool when there
// is none. Repositories call this so the same queries work either way.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
