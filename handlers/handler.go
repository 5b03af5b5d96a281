package handlers

import (
	"context"
	"errors"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"
	"github.com/valldsonsantos/PI-MVP-Senac/database"
	"github.com/valldsonsantos/PI-MVP-Senac/store"
	"github.com/valldsonsantos/PI-MVP-Senac/validator"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Envelope status values. The browser client compares against these literally.
const (
	statusSuccess = "sucesso"
	statusError   = "erro"
)

type Handler struct {
	logger    logrus.FieldLogger
	validator *validator.Validator
}

func New(logger logrus.FieldLogger) *Handler {
	return &Handler{
		logger:    logger,
		validator: validator.New(),
	}
}

// storeFor binds a Store to the request's connection
func (h *Handler) storeFor(c *gin.Context) (*store.Store, error) {
	conn, err := database.Acquire(c)
	if err != nil {
		return nil, err
	}
	return store.New(conn), nil
}

// requestContext drops cancellation: a started statement runs to completion
// even if the client goes away.
func requestContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func respond(c *gin.Context, code int, payload gin.H) {
	payload["status"] = statusSuccess
	c.JSON(code, payload)
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":   statusError,
		"mensagem": message,
	})
}

// respondFailure maps err to its status code and logs server-side failures.
func (h *Handler) respondFailure(c *gin.Context, err error) {
	code := apperrors.HTTPStatus(err)
	message := err.Error()
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Public()
	}

	if code >= 500 {
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	}
	_ = c.Error(err)

	respondError(c, code, message)
}
