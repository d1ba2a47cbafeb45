package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{query: "SELECT id FROM bookings", want: "select"},
		{query: "  INSERT INTO bookings (id) VALUES ($1)", want: "insert"},
		{query: "update bookings SET status = $1", want: "update"},
		{query: "DELETE\nFROM bookings", want: "delete"},
		{query: "", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, operation(tt.query))
		})
	}
}

type fakeTx struct{}

func (fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}
func (fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row { return nil }
func (fakeTx) Commit() error                                                    { return nil }
func (fakeTx) Rollback() error                                                  { return nil }

func TestGetExecutor(t *testing.T) {
	fallback := &DB{}
	ctx := context.Background()

	assert.Same(t, fallback, GetExecutor(ctx, fallback))
	assert.False(t, IsInTransaction(ctx))

	tx := fakeTx{}
	txCtx := WithTx(ctx, tx)
	assert.Equal(t, tx, GetExecutor(txCtx, fallback))
	assert.True(t, IsInTransaction(txCtx))
}
