package testutil

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

// MySQLContainer wraps a MySQL test container.
type MySQLContainer struct {
	Container *mysql.MySQLContainer
	// URL is a mysql:// connection URL accepted by the gateway.
	URL string
}

// MySQLOptions configures the MySQL container.
type MySQLOptions struct {
	// Image is the MySQL image to use. Defaults to "mysql:8.0".
	Image string
	// Database is the schema to create. Defaults to "testdb".
	Database string
	// Username and Password are the credentials for the test account.
	Username string
	Password string
}

// DefaultMySQLOptions returns default options for the MySQL container.
func DefaultMySQLOptions() MySQLOptions {
	return MySQLOptions{
		Image:    "mysql:8.0",
		Database: "testdb",
		Username: "tester",
		Password: "secret",
	}
}

// StartMySQL starts a MySQL container for testing.
//
// The container is automatically terminated when the test completes.
//
// Parameters:
//   - ctx: Context for container operations
//   - t: Testing context for cleanup registration
//   - opts: Optional configuration (nil uses defaults)
//
// Returns:
//   - *MySQLContainer: Container with a ready-to-use connection URL
//   - error: Error if the container fails to start
func StartMySQL(ctx context.Context, t *testing.T, opts *MySQLOptions) (*MySQLContainer, error) {
	t.Helper()

	if opts == nil {
		defaultOpts := DefaultMySQLOptions()
		opts = &defaultOpts
	}

	container, err := mysql.Run(ctx, opts.Image,
		mysql.WithDatabase(opts.Database),
		mysql.WithUsername(opts.Username),
		mysql.WithPassword(opts.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start MySQL container: %w", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate MySQL container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}

	u := url.URL{
		Scheme: "mysql",
		User:   url.UserPassword(opts.Username, opts.Password),
		Host:   fmt.Sprintf("%s:%s", host, port.Port()),
		Path:   "/" + opts.Database,
	}

	return &MySQLContainer{
		Container: container,
		URL:       u.String(),
	}, nil
}
