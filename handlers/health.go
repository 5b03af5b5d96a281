package handlers

import (
	"net/http"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"
	"github.com/valldsonsantos/PI-MVP-Senac/database"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health and checks the database answers
func (h *Handler) Health(c *gin.Context) {
	conn, err := database.Acquire(c)
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	if err := conn.PingContext(requestContext(c)); err != nil {
		h.respondFailure(c, apperrors.Wrap(err, apperrors.KindConnection, "Falha na conexão com o banco de dados"))
		return
	}

	respond(c, http.StatusOK, gin.H{
		"servico": "API de Agendamento de Coleta de Lixo Eletrônico",
		"versao":  "1.0.0",
	})
}
