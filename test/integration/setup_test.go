package integration_test

import (
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/sqlgate/sqlgate"
	"github.com/sqlgate/sqlgate/test/testutil"
)

// TestMain gates the integration suite. The tests need Docker; skip them in
// short mode or when SKIP_INTEGRATION_TESTS=1 is set.
func TestMain(m *testing.M) {
	flag.Parse()

	if testing.Short() {
		return
	}

	if os.Getenv("SKIP_INTEGRATION_TESTS") == "1" {
		fmt.Println("Skipping integration tests (SKIP_INTEGRATION_TESTS=1)")

		return
	}

	os.Exit(m.Run())
}

// newGateway creates a gateway that is closed when the test completes.
func newGateway(t *testing.T) *sqlgate.Gateway {
	t.Helper()

	gw := sqlgate.New(sqlgate.WithDataDir(t.TempDir()))
	t.Cleanup(func() { _ = gw.Close() })

	return gw
}

// connectMySQL starts a MySQL container and connects the gateway to it,
// returning the connection handle.
func connectMySQL(t *testing.T, gw *sqlgate.Gateway) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := t.Context()
	container, err := testutil.StartMySQL(ctx, t, nil)
	if err != nil {
		t.Fatalf("failed to start MySQL: %v", err)
	}

	resp, err := gw.Connect(ctx, sqlgate.ConnectRequest{URL: container.URL})
	if err != nil {
		t.Fatalf("failed to connect gateway to MySQL: %v", err)
	}

	return resp.Handle
}

// connectPostgres starts a PostgreSQL container and connects the gateway to
// it, returning the connection handle.
func connectPostgres(t *testing.T, gw *sqlgate.Gateway) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := t.Context()
	container, err := testutil.StartPostgres(ctx, t, nil)
	if err != nil {
		t.Fatalf("failed to start PostgreSQL: %v", err)
	}

	resp, err := gw.Connect(ctx, sqlgate.ConnectRequest{URL: container.URL})
	if err != nil {
		t.Fatalf("failed to connect gateway to PostgreSQL: %v", err)
	}

	return resp.Handle
}
