package testutil

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// PostgresContainer wraps a PostgreSQL test container.
type PostgresContainer struct {
	Container *postgres.PostgresContainer
	// URL is a postgres:// connection URL accepted by the gateway.
	URL string
}

// PostgresOptions configures the PostgreSQL container.
type PostgresOptions struct {
	// Image is the PostgreSQL image to use. Defaults to "postgres:16-alpine".
	Image string
	// Database is the database to create. Defaults to "testdb".
	Database string
	// Username and Password are the credentials for the test account.
	Username string
	Password string
}

// DefaultPostgresOptions returns default options for the PostgreSQL container.
func DefaultPostgresOptions() PostgresOptions {
	return PostgresOptions{
		Image:    "postgres:16-alpine",
		Database: "testdb",
		Username: "tester",
		Password: "secret",
	}
}

// StartPostgres starts a PostgreSQL container for testing.
//
// The container is automatically terminated when the test completes.
//
// Parameters:
//   - ctx: Context for container operations
//   - t: Testing context for cleanup registration
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *PostgresContainer: Container with a ready-to-use connection URL
//   - error: Error if the container fails to start
func StartPostgres(ctx context.Context, t *testing.T, opts *PostgresOptions) (*PostgresContainer, error) {
	t.Helper()

	if opts == nil {
		defaultOpts := DefaultPostgresOptions()
		opts = &defaultOpts
	}

	container, err := postgres.Run(ctx, opts.Image,
		postgres.WithDatabase(opts.Database),
		postgres.WithUsername(opts.Username),
		postgres.WithPassword(opts.Password),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(opts.Username, opts.Password),
		Host:     fmt.Sprintf("%s:%s", host, port.Port()),
		Path:     "/" + opts.Database,
		RawQuery: "sslmode=disable",
	}

	return &PostgresContainer{
		Container: container,
		URL:       u.String(),
	}, nil
}
