package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCollectionPoints handles GET /pontos
func (h *Handler) ListCollectionPoints(c *gin.Context) {
	s, err := h.storeFor(c)
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	points, err := s.CollectionPoints(requestContext(c))
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"dados": points,
	})
}
