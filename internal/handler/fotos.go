package handler

import (
	"net/http"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/service"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"

	"github.com/gin-gonic/gin"
)

type FotosHandler struct {
	svc service.FotoService
}

func NewFotosHandler(svc service.FotoService) *FotosHandler {
	return &FotosHandler{svc: svc}
}

func propietarioDesdeQuery(c *gin.Context) (upstream.PropietarioFoto, bool) {
	var req dto.SubirFotoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return upstream.PropietarioFoto{}, false
	}
	owner := upstream.PropietarioFoto{IDPieza: req.IDPieza, IDVehiculo: req.IDVehiculo}
	if (req.IDPieza == nil) == (req.IDVehiculo == nil) {
		c.JSON(http.StatusBadRequest, apierror.New("Debe indicarse id_pieza o id_vehiculo, pero no ambos"))
		return upstream.PropietarioFoto{}, false
	}
	return owner, true
}

func (h *FotosHandler) Listar(c *gin.Context) {
	owner, ok := propietarioDesdeQuery(c)
	if !ok {
		return
	}
	fotos, err := h.svc.ListarPorPropietario(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al listar fotos"))
		return
	}
	c.JSON(http.StatusOK, dto.FotoListResponse{Data: fotos})
}

func (h *FotosHandler) Subir(c *gin.Context) {
	var req dto.SubirFotoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	if (req.IDPieza == nil) == (req.IDVehiculo == nil) {
		c.JSON(http.StatusBadRequest, apierror.New("Debe indicarse id_pieza o id_vehiculo, pero no ambos"))
		return
	}
	fileHeader, err := c.FormFile("archivo")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el archivo multipart 'archivo'"))
		return
	}
	archivo, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo leer el archivo"))
		return
	}
	defer archivo.Close()

	owner := upstream.PropietarioFoto{IDPieza: req.IDPieza, IDVehiculo: req.IDVehiculo}
	foto, err := h.svc.Subir(c.Request.Context(), owner, fileHeader.Filename, archivo)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al subir la foto"))
		return
	}
	c.JSON(http.StatusCreated, foto)
}

func (h *FotosHandler) MarcarPrincipal(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	foto, err := h.svc.MarcarPrincipal(c.Request.Context(), id)
	if err != nil {
		if upstream.EsNoEncontrado(err) {
			c.JSON(http.StatusNotFound, apierror.New("Foto no encontrada"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error al marcar la foto como principal"))
		return
	}
	c.JSON(http.StatusOK, foto)
}

func (h *FotosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if upstream.EsNoEncontrado(err) {
			c.JSON(http.StatusNotFound, apierror.New("Foto no encontrada"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error al eliminar la foto"))
		return
	}
	c.Status(http.StatusNoContent)
}
