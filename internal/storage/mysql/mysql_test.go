package mysql

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"embroidery-quote/internal/config"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *sql.DB

// ESTIMATOR_TEST_DSN=root:@tcp(localhost:3306)/embroidery_test?parseTime=true
func TestMain(m *testing.M) {
	if dsn := os.Getenv("ESTIMATOR_TEST_DSN"); dsn != "" {
		var err error
		testDB, err = sql.Open("mysql", dsn)
		if err != nil {
			panic(fmt.Errorf("open test db: %w", err))
		}

		if err := testDB.Ping(); err != nil {
			panic(fmt.Errorf("ping failed: %w", err))
		}

		schema, err := os.ReadFile("../../../migrations/001_embroidery_presets.sql")
		if err != nil {
			panic(fmt.Errorf("read schema: %w", err))
		}
		if _, err := testDB.Exec(string(schema)); err != nil {
			panic(fmt.Errorf("apply schema: %w", err))
		}
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("ESTIMATOR_TEST_DSN not set")
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(config.Storage{
		DBUser:     "user",
		DBPassword: "secret",
		DBHost:     "db.local",
		DBPort:     3307,
		DBName:     "embroidery",
		ParseTime:  true,
	})

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)

	assert.Equal(t, "user", parsed.User)
	assert.Equal(t, "secret", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db.local:3307", parsed.Addr)
	assert.Equal(t, "embroidery", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.True(t, parsed.ClientFoundRows)
}
