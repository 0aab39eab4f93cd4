package database

import (
	"context"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/at-ishikawa/fwewterm/schemas"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	migrations := fstest.MapFS{
		"migrations/002_second.sql": {Data: []byte("CREATE TABLE b (id INT)")},
		"migrations/001_first.sql":  {Data: []byte("CREATE TABLE a (id INT)")},
		"migrations/README.md":      {Data: []byte("not a migration")},
	}

	tests := []struct {
		name        string
		setupMock   func(mock sqlmock.Sqlmock)
		wantApplied []string
		wantErr     bool
	}{
		{
			name: "applies in name order",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE a").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantApplied: []string{"001_first.sql", "002_second.sql"},
		},
		{
			name: "stops at the first failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE a").WillReturnError(fmt.Errorf("access denied"))
			},
			wantApplied: []string{},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			tt.setupMock(mock)

			got, err := Migrate(context.Background(), sqlx.NewDb(db, "mysql"), migrations, "migrations")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantApplied, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrate_EmbeddedSchemas(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS user_settings").WillReturnResult(sqlmock.NewResult(0, 0))

	got, err := Migrate(context.Background(), sqlx.NewDb(db, "mysql"), schemas.Migrations, "migrations")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_user_settings.sql"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
