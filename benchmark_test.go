package sqlgate_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sqlgate/sqlgate"
	"github.com/sqlgate/sqlgate/types"
)

// setupBenchGateway connects an in-memory SQLite database seeded with a small
// table. SQLite keeps the benchmarks self-contained; the point is gateway
// overhead, not server round trips.
func setupBenchGateway(b *testing.B) (*sqlgate.Gateway, string) {
	b.Helper()

	gw := sqlgate.New(sqlgate.WithDataDir(b.TempDir()))
	b.Cleanup(func() { _ = gw.Close() })

	ctx := context.Background()
	resp, err := gw.Connect(ctx, sqlgate.ConnectRequest{URL: "sqlite::memory:"})
	if err != nil {
		b.Fatal(err)
	}

	_, err = gw.Execute(ctx, sqlgate.ExecuteRequest{
		DB:    resp.Handle,
		Query: "CREATE TABLE bench(id INTEGER PRIMARY KEY, name TEXT, score REAL)",
	})
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < 100; i++ {
		_, err = gw.Execute(ctx, sqlgate.ExecuteRequest{
			DB:     resp.Handle,
			Query:  "INSERT INTO bench(name, score) VALUES (?, ?)",
			Values: []types.Value{types.String("row"), types.Float(float64(i))},
		})
		if err != nil {
			b.Fatal(err)
		}
	}

	return gw, resp.Handle
}

// BenchmarkExecute measures single-statement write overhead.
func BenchmarkExecute(b *testing.B) {
	gw, db := setupBenchGateway(b)
	ctx := context.Background()

	req := sqlgate.ExecuteRequest{
		DB:     db,
		Query:  "INSERT INTO bench(name, score) VALUES (?, ?)",
		Values: []types.Value{types.String("bench"), types.Float(1.5)},
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		if _, err := gw.Execute(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelect measures query plus row materialization overhead.
func BenchmarkSelect(b *testing.B) {
	gw, db := setupBenchGateway(b)
	ctx := context.Background()

	req := sqlgate.SelectRequest{
		DB:    db,
		Query: "SELECT id, name, score FROM bench",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		resp, err := gw.Select(ctx, req)
		if err != nil {
			b.Fatal(err)
		}
		if len(resp.Rows) == 0 {
			b.Fatal("no rows")
		}
	}
}

// BenchmarkValueDecodeJSON measures dynamic value classification from JSON.
func BenchmarkValueDecodeJSON(b *testing.B) {
	payload := []byte(`[null, "Alice", 42, 1.5, true, {"a": 1}]`)

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		var values []types.Value
		if err := json.Unmarshal(payload, &values); err != nil {
			b.Fatal(err)
		}
	}
}
