// Package testutil provides test utilities for the sqlgate project.
//
// The helpers start disposable database servers with testcontainers and hand
// back connection URLs in the form the gateway accepts:
//
//   - StartMySQL: Starts a MySQL test container (requires Docker)
//   - StartPostgres: Starts a PostgreSQL test container (requires Docker)
//
// Containers are registered for cleanup on the test and terminated when the
// test completes. SQLite needs no helper; the gateway opens it in-process.
package testutil
