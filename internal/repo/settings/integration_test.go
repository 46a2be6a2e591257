//go:build integration
// +build integration

package settings_repo_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"openpay-gateway/internal/testinfra"
	"openpay-gateway/pkg/postgres"
)

var (
	container *testinfra.PostgresContainer
	pool      *postgres.Postgres
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := testinfra.NewPostgres(ctx)
	if err != nil {
		panic(fmt.Sprintf("Failed to start postgres container: %v", err))
	}

	container = pgContainer
	pool = pgContainer.Pool

	code := m.Run()

	pgContainer.Cleanup(ctx)
	os.Exit(code)
}
