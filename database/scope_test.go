package database_test

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"
	"github.com/valldsonsantos/PI-MVP-Senac/database"
	"github.com/valldsonsantos/PI-MVP-Senac/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newScopedEngine(sqlDB *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.RecoveryWithWriter(io.Discard))
	r.Use(database.NewManager(sqlDB, testutil.Logger()).Middleware())
	return r
}

func TestAcquire_LazyAndReusedWithinRequest(t *testing.T) {
	_, sqlDB := testutil.SetupTestDB(t)
	r := newScopedEngine(sqlDB)

	var inUseDuring int
	r.GET("/twice", func(c *gin.Context) {
		assert.Equal(t, 0, sqlDB.Stats().InUse, "nothing acquired before first use")

		first, err := database.Acquire(c)
		require.NoError(t, err)
		second, err := database.Acquire(c)
		require.NoError(t, err)

		assert.Same(t, first, second)
		inUseDuring = sqlDB.Stats().InUse
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/twice", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, inUseDuring)
	assert.Equal(t, 0, sqlDB.Stats().InUse, "released at end of request")
}

func TestAcquire_HandlerWithoutStorageOpensNothing(t *testing.T) {
	_, sqlDB := testutil.SetupTestDB(t)
	r := newScopedEngine(sqlDB)
	r.GET("/static", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestAcquire_ReleasedWhenHandlerPanics(t *testing.T) {
	_, sqlDB := testutil.SetupTestDB(t)
	r := newScopedEngine(sqlDB)
	r.GET("/panic", func(c *gin.Context) {
		_, err := database.Acquire(c)
		require.NoError(t, err)
		panic("handler failure")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, sqlDB.Stats().InUse)
}

func TestAcquire_ClosedDatabaseIsConnectionFailure(t *testing.T) {
	_, sqlDB := testutil.SetupTestDB(t)
	r := newScopedEngine(sqlDB)

	var acquireErr error
	r.GET("/closed", func(c *gin.Context) {
		_, acquireErr = database.Acquire(c)
		c.Status(http.StatusInternalServerError)
	})
	require.NoError(t, sqlDB.Close())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/closed", nil))

	require.Error(t, acquireErr)
	assert.Equal(t, apperrors.KindConnection, apperrors.KindOf(acquireErr))
}

func TestAcquire_WithoutMiddleware(t *testing.T) {
	r := gin.New()

	var acquireErr error
	r.GET("/bare", func(c *gin.Context) {
		_, acquireErr = database.Acquire(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bare", nil))

	assert.ErrorIs(t, acquireErr, database.ErrNoScope)
	assert.True(t, apperrors.Is(acquireErr, apperrors.KindConnection))
}
