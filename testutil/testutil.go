package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valldsonsantos/PI-MVP-Senac/database"
	"github.com/valldsonsantos/PI-MVP-Senac/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Logger returns a logger that discards everything
func Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// SetupTestDB opens a migrated database in a fresh file under t.TempDir().
// In-memory databases are not used because every pooled connection would
// see its own empty database.
func SetupTestDB(t *testing.T) (*gorm.DB, *sql.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(context.Background(), path, Logger())
	require.NoError(t, err, "open test database")
	require.NoError(t, database.Migrate(db), "migrate test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db, sqlDB
}

func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, Password: "senha123", Kind: models.KindCitizen}
	require.NoError(t, db.Create(user).Error, "create test user")
	return user
}

func CreateTestCollectionPoint(t *testing.T, db *gorm.DB, name string) *models.CollectionPoint {
	t.Helper()

	hours := "Seg-Sex, 8h-17h"
	point := &models.CollectionPoint{
		Name:      name,
		Address:   "Rua das Flores, 100, Centro",
		Latitude:  -23.6698,
		Longitude: -46.5492,
		Hours:     &hours,
	}
	require.NoError(t, db.Create(point).Error, "create test collection point")
	return point
}

// CreateTestPickupRequest inserts a request for the given owner and point.
// pointID may be nil to mimic rows from before collection points existed.
func CreateTestPickupRequest(t *testing.T, db *gorm.DB, userID int64, pointID *int64, date, status string) *models.PickupRequest {
	t.Helper()

	req := &models.PickupRequest{
		UserID:            userID,
		CollectionPointID: pointID,
		PickupDate:        date,
		WasteType:         "Monitor e CPU",
		Address:           "Rua X",
		Status:            status,
	}
	require.NoError(t, db.Create(req).Error, "create test pickup request")
	return req
}

// ExecWithoutForeignKeys runs query with foreign key enforcement switched
// off on one connection, which is switched back on before it returns to the
// pool. Used to build rows the schema would normally reject.
func ExecWithoutForeignKeys(t *testing.T, sqlDB *sql.DB, query string, args ...interface{}) {
	t.Helper()

	ctx := context.Background()
	conn, err := sqlDB.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF")
	require.NoError(t, err)
	defer func() {
		_, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON")
		require.NoError(t, err, "re-enable foreign keys")
	}()

	_, err = conn.ExecContext(ctx, query, args...)
	require.NoError(t, err)
}

// CountRows counts rows in table
func CountRows(t *testing.T, sqlDB *sql.DB, table string) int {
	t.Helper()

	var n int
	require.NoError(t, sqlDB.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// StoredStatus reads the status column of one pickup request
func StoredStatus(t *testing.T, sqlDB *sql.DB, id int64) string {
	t.Helper()

	var status string
	require.NoError(t, sqlDB.QueryRow("SELECT status FROM agendamentos WHERE id = ?", id).Scan(&status))
	return status
}

// MakeRequest creates a test request with body encoded as JSON
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// MakeRawRequest creates a test request with a literal body
func MakeRawRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON decodes the recorded response body into a generic map
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode response: %s", w.Body.String())
	return body
}
