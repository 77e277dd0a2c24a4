package migrations

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	countOwnerlessQuery = "SELECT count(*) FROM clients WHERE owner_id IS NULL"
	superuserQuery      = "SELECT id FROM users WHERE is_superuser AND is_active AND deleted_at IS NULL ORDER BY created_at LIMIT 1"
	assignOwnerQuery    = "UPDATE clients SET owner_id = $1 WHERE owner_id IS NULL"
)

func newSQLMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	conn, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return conn, mock
}

func TestAssignOwnerlessClients(t *testing.T) {
	tests := []struct {
		name      string
		ownerless int
		superuser []string
		wantErr   string
	}{
		{name: "nothing to assign", ownerless: 0},
		{name: "assigns to the earliest superuser", ownerless: 3, superuser: []string{"d0superuser000000000"}},
		{name: "fails without a superuser", ownerless: 2, wantErr: "2 clients have no owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newSQLMockDB(t)
			mock.ExpectQuery(regexp.QuoteMeta(countOwnerlessQuery)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.ownerless))
			if tt.ownerless > 0 {
				rows := sqlmock.NewRows([]string{"id"})
				for _, id := range tt.superuser {
					rows.AddRow(id)
				}
				mock.ExpectQuery(regexp.QuoteMeta(superuserQuery)).WillReturnRows(rows)
			}
			if len(tt.superuser) > 0 {
				mock.ExpectExec(regexp.QuoteMeta(assignOwnerQuery)).
					WithArgs(tt.superuser[0]).
					WillReturnResult(sqlmock.NewResult(0, int64(tt.ownerless)))
			}

			err := assignOwnerlessClients(conn)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
