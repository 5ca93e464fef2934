package handler

import (
	"errors"
	"net/http"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/service"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"

	"github.com/gin-gonic/gin"
)

type IncidenciasHandler struct {
	svc service.IncidenciaService
}

func NewIncidenciasHandler(svc service.IncidenciaService) *IncidenciasHandler {
	return &IncidenciasHandler{svc: svc}
}

func (h *IncidenciasHandler) Listar(c *gin.Context) {
	var filter dto.IncidenciaFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al listar incidencias"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *IncidenciasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inc, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Incidencia no encontrada"))
		return
	}
	c.JSON(http.StatusOK, inc)
}

func (h *IncidenciasHandler) Crear(c *gin.Context) {
	var req dto.CrearIncidenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	inc, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al crear la incidencia"))
		return
	}
	c.JSON(http.StatusCreated, inc)
}

func (h *IncidenciasHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.CambiarEstadoIncidenciaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	inc, err := h.svc.CambiarEstado(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEstadoInvalido):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		case upstream.EsNoEncontrado(err):
			c.JSON(http.StatusNotFound, apierror.New("Incidencia no encontrada"))
		default:
			c.JSON(http.StatusBadGateway, apierror.New("Error al actualizar la incidencia"))
		}
		return
	}
	c.JSON(http.StatusOK, inc)
}
