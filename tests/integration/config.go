package integration

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"thinksync/app/config"
	"thinksync/app/driver/kratos"
	"thinksync/app/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "thinksync_test_db"
	TestPostgresUser     = "thinksync_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestKratosPublicURL = "http://localhost:4433"
	TestKratosAdminURL  = "http://localhost:4434"
)

// TestConfig creates a configuration for integration tests
func TestConfig() *config.Config {
	return &config.Config{
		// Server
		Port:     "9500",
		Host:     "0.0.0.0",
		LogLevel: "debug",

		// Database
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		// Kratos
		KratosPublicURL: TestKratosPublicURL,
		KratosAdminURL:  TestKratosAdminURL,
	}
}

// TestDatabaseConnection opens a pgx pool against the test database
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		TestPostgresUser, TestPostgresPassword,
		TestPostgresHost, TestPostgresPort,
		TestPostgresDB, TestPostgresSSLMode)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return pgxpool.New(ctx, dsn)
}

// WaitForDatabase blocks until the test database accepts connections
// or the deadline expires.
func WaitForDatabase(ctx context.Context) error {
	deadline := time.Now().Add(30 * time.Second)

	for time.Now().Before(deadline) {
		pool, err := TestDatabaseConnection()
		if err == nil {
			pingErr := pool.Ping(ctx)
			pool.Close()
			if pingErr == nil {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return fmt.Errorf("test database not ready after 30s")
}

// TestKratosClient builds a kratos driver against the test instance
func TestKratosClient() (*kratos.Client, error) {
	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, err
	}
	return kratos.NewClient(TestConfig(), testLogger)
}

// WaitForKratos blocks until the test Kratos instance answers its health
// endpoint or the deadline expires.
func WaitForKratos(ctx context.Context) error {
	deadline := time.Now().Add(30 * time.Second)
	httpClient := &http.Client{Timeout: 2 * time.Second}

	for time.Now().Before(deadline) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, TestKratosPublicURL+"/health/ready", nil)
		if err != nil {
			return err
		}
		resp, err := httpClient.Do(req)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
		}
	}

	return fmt.Errorf("kratos not ready after 30s")
}
