package routes

import (
	"net/http"

	"github.com/valldsonsantos/PI-MVP-Senac/database"
	"github.com/valldsonsantos/PI-MVP-Senac/handlers"
	"github.com/valldsonsantos/PI-MVP-Senac/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// New builds the engine with every route bound to h. Each request gets its
// own database scope from manager.
func New(manager *database.Manager, h *handlers.Handler, logger logrus.FieldLogger) *gin.Engine {
	r := gin.New()

	r.Use(
		middleware.Logging(logger),
		middleware.Recovery(logger),
		middleware.CORS(),
		manager.Middleware(),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"status": "erro", "mensagem": "Rota não encontrada."})
	})

	r.GET("/health", h.Health)

	// ── Collection points ──────────────────────────────────────────
	r.GET("/pontos", h.ListCollectionPoints)

	// ── Pickup requests ────────────────────────────────────────────
	r.POST("/agendamentos", h.CreatePickupRequest)
	r.GET("/agendamentos", h.ListPickupRequests)
	r.PUT("/agendamentos/:id", h.UpdatePickupRequestStatus)

	return r
}
