package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/valldsonsantos/PI-MVP-Senac/apperrors"
	"github.com/valldsonsantos/PI-MVP-Senac/models"
	"github.com/valldsonsantos/PI-MVP-Senac/validator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

var errNoBody = apperrors.New(apperrors.KindValidation, "Nenhum dado JSON fornecido.")

var errInvalidJSON = apperrors.New(apperrors.KindValidation, "JSON inválido")

// Field order is the order missing fields are reported in. Any "status" the
// caller sends is dropped on decode.
type createPickupRequestBody struct {
	UserID            *looseInt64  `json:"usuario_id" validate:"required"`
	PickupDate        *looseString `json:"data_retirada" validate:"required"`
	WasteType         *looseString `json:"tipo_lixo" validate:"required"`
	CollectionPointID *looseInt64  `json:"ponto_coleta_id" validate:"required"`
	Address           *looseString `json:"endereco_coleta" validate:"required"`
	Landmark          *looseString `json:"ponto_referencia"`
}

type updateStatusBody struct {
	Status *looseString `json:"status"`
}

// bindBody decodes the JSON body into v. A missing body, `null` and `{}` all
// yield errNoBody. Decoder details are logged, never returned to the caller.
func (h *Handler) bindBody(c *gin.Context, v interface{}) error {
	var fields map[string]interface{}
	if err := c.ShouldBindBodyWith(&fields, binding.JSON); err != nil {
		if errors.Is(err, io.EOF) {
			return errNoBody
		}
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Debug("undecodable request body")
		return errInvalidJSON
	}
	if len(fields) == 0 {
		return errNoBody
	}

	if err := c.ShouldBindBodyWith(v, binding.JSON); err != nil {
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Debug("request body does not fit")
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return apperrors.New(apperrors.KindValidation, fmt.Sprintf("Campo '%s' com tipo inválido.", typeErr.Field))
		}
		return errInvalidJSON
	}

	return nil
}

// CreatePickupRequest handles POST /agendamentos
func (h *Handler) CreatePickupRequest(c *gin.Context) {
	var body createPickupRequestBody
	if err := h.bindBody(c, &body); err != nil {
		h.respondFailure(c, err)
		return
	}

	if err := h.validator.Validate(&body); err != nil {
		var fieldErr *validator.FieldError
		if errors.As(err, &fieldErr) {
			respondError(c, http.StatusBadRequest, fmt.Sprintf("Campo obrigatório '%s' não fornecido.", fieldErr.Field))
			return
		}
		h.respondFailure(c, err)
		return
	}

	s, err := h.storeFor(c)
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	req := &models.PickupRequest{
		UserID:            int64(*body.UserID),
		CollectionPointID: body.CollectionPointID.int64Ptr(),
		PickupDate:        string(*body.PickupDate),
		WasteType:         string(*body.WasteType),
		Address:           string(*body.Address),
		Landmark:          body.Landmark.stringPtr(),
	}

	id, err := s.CreatePickupRequest(requestContext(c), req)
	if err != nil {
		if apperrors.Is(err, apperrors.KindIntegrity) {
			h.logger.WithError(err).WithFields(logrus.Fields{
				"usuario_id":      req.UserID,
				"ponto_coleta_id": *req.CollectionPointID,
			}).Warn("pickup request rejected by integrity check")
		}
		h.respondFailure(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"id":         id,
		"usuario_id": req.UserID,
	}).Info("pickup request created")

	respond(c, http.StatusCreated, gin.H{
		"mensagem":         "Agendamento criado com sucesso!",
		"id_agendamento":   id,
		"novo_agendamento": req,
	})
}

// ListPickupRequests handles GET /agendamentos. Every caller sees every request.
func (h *Handler) ListPickupRequests(c *gin.Context) {
	s, err := h.storeFor(c)
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	requests, err := s.PickupRequests(requestContext(c))
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"total": len(requests),
		"dados": requests,
	})
}

// UpdatePickupRequestStatus handles PUT /agendamentos/:id
func (h *Handler) UpdatePickupRequestStatus(c *gin.Context) {
	rawID := c.Param("id")
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, fmt.Sprintf("Agendamento com ID %s não encontrado.", rawID))
		return
	}

	var body updateStatusBody
	if err := h.bindBody(c, &body); err != nil {
		if errors.Is(err, errNoBody) {
			respondError(c, http.StatusBadRequest, "O campo 'status' é obrigatório para atualização.")
			return
		}
		h.respondFailure(c, err)
		return
	}

	if body.Status == nil || *body.Status == "" {
		respondError(c, http.StatusBadRequest, "O campo 'status' é obrigatório para atualização.")
		return
	}
	status := string(*body.Status)

	s, err := h.storeFor(c)
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	affected, err := s.UpdatePickupRequestStatus(requestContext(c), id, status)
	if err != nil {
		h.respondFailure(c, err)
		return
	}

	if affected == 0 {
		respondError(c, http.StatusNotFound, fmt.Sprintf("Agendamento com ID %d não encontrado.", id))
		return
	}

	h.logger.WithFields(logrus.Fields{
		"id":     id,
		"status": status,
	}).Info("pickup request status updated")

	respond(c, http.StatusOK, gin.H{
		"mensagem": fmt.Sprintf("Status do Agendamento %d atualizado para '%s'.", id, status),
	})
}
