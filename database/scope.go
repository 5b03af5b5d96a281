package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const scopeKey = "database.scope"

const connectionFailureMessage = "Falha na conexão com o banco de dados"

var ErrNoScope = errors.New("request has no database scope")

// Manager hands out one dedicated connection per request.
type Manager struct {
	db     *sql.DB
	logger logrus.FieldLogger
}

func NewManager(db *sql.DB, logger logrus.FieldLogger) *Manager {
	return &Manager{db: db, logger: logger}
}

type scope struct {
	manager *Manager
	conn    *sql.Conn
}

// Middleware attaches an empty scope to the request and releases whatever it
// acquired once the rest of the chain returns, panics included.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := &scope{manager: m}
		c.Set(scopeKey, s)
		defer s.release()

		c.Next()
	}
}

// Acquire returns the request's connection, opening it on first use.
// Failures are *apperrors.Error of kind KindConnection.
func Acquire(c *gin.Context) (*sql.Conn, error) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return nil, apperrors.Wrap(ErrNoScope, apperrors.KindConnection, connectionFailureMessage)
	}

	return v.(*scope).acquire(context.WithoutCancel(c.Request.Context()))
}

func (s *scope) acquire(ctx context.Context) (*sql.Conn, error) {
	if s.conn != nil {
		return s.conn, nil
	}

	conn, err := s.manager.db.Conn(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindConnection, connectionFailureMessage)
	}

	s.conn = conn
	return conn, nil
}

func (s *scope) release() {
	if s.conn == nil {
		return
	}

	if err := s.conn.Close(); err != nil && !errors.Is(err, sql.ErrConnDone) {
		s.manager.logger.WithError(err).Warn("failed to release database connection")
	}
	s.conn = nil
}
