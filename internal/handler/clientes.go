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

type ClientesHandler struct {
	svc service.ClienteService
}

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	var filter dto.ClienteFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientesHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cliente, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrClienteIncompleto) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error al crear el cliente"))
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if upstream.EsNoEncontrado(err) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if upstream.EsNoEncontrado(err) {
			c.JSON(http.StatusNotFound, apierror.New("Cliente no encontrado"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error al eliminar el cliente"))
		return
	}
	c.Status(http.StatusNoContent)
}
