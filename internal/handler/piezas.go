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

type PiezasHandler struct {
	svc service.PiezaService
	woo service.WooService
}

func NewPiezasHandler(svc service.PiezaService, woo service.WooService) *PiezasHandler {
	return &PiezasHandler{svc: svc, woo: woo}
}

func (h *PiezasHandler) Listar(c *gin.Context) {
	var filter dto.PiezaFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al listar piezas"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PiezasHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pieza, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pieza no encontrada"))
		return
	}
	c.JSON(http.StatusOK, pieza)
}

func (h *PiezasHandler) Crear(c *gin.Context) {
	var req dto.CrearPiezaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pieza, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, pieza)
}

func (h *PiezasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPiezaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pieza, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, pieza)
}

func (h *PiezasHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrPiezaBloqueada):
			c.JSON(http.StatusConflict, apierror.New(err.Error()))
		case upstream.EsNoEncontrado(err):
			c.JSON(http.StatusNotFound, apierror.New("Pieza no encontrada"))
		default:
			c.JSON(http.StatusBadGateway, apierror.New("Error al eliminar la pieza"))
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PiezasHandler) PublicarEnWoo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.woo.Publicar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"encolado": true, "id_pieza": id})
}

func (h *PiezasHandler) EstadoWoo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	estado, err := h.woo.Estado(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Estado de sincronización no disponible"))
		return
	}
	c.JSON(http.StatusOK, estado)
}

func (h *PiezasHandler) RetirarDeWoo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.woo.Retirar(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al retirar la pieza de la tienda"))
		return
	}
	c.Status(http.StatusNoContent)
}
