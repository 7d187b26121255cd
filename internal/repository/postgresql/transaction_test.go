package postgresql

import (
	"context"
	"testing"

	"github.com/finpay-hq/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type stubTx struct{}

func (stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (stubTx) Commit(ctx context.Context) error          { return nil }
func (stubTx) Rollback(ctx context.Context) error        { return nil }
func (stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (stubTx) Conn() *pgx.Conn                                               { return nil }

func TestGetQuerier(t *testing.T) {
	db := &database.DB{}

	t.Run("prefers the transaction carried by the context", func(t *testing.T) {
		tx := stubTx{}
		ctx := context.WithValue(context.Background(), "tx", pgx.Tx(tx))

		assert.Equal(t, pgx.Tx(tx), GetQuerier(ctx, db))
	})

	t.Run("falls back to the pool", func(t *testing.T) {
		assert.Equal(t, db.Pool, GetQuerier(context.Background(), db))
	})
}
