package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/managely-hr/hr-backend-go/internal/pkg/database"
	"github.com/managely-hr/hr-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

// TestMain connects to TEST_DATABASE_URL and applies migrations. Without it
// every test in this package is skipped.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		os.Exit(m.Run())
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to test database: %v\n", err)
		os.Exit(1)
	}
	if err := database.Migrate(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate test database: %v\n", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()
	db.Close()
	os.Exit(code)
}

// txContext returns a context bound to a transaction that is rolled back when
// the test ends, so tests never see each other's rows.
func txContext(t *testing.T) context.Context {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}

	tx, err := testDB.BeginTx(t.Context())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return postgresql.ContextWithTx(t.Context(), tx)
}
