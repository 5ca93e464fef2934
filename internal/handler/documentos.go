package handler

import (
	"net/http"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"

	"github.com/gin-gonic/gin"
)

// DocumentosHandler talks straight to the backend: documents are neither
// cached nor enriched, only relayed.
type DocumentosHandler struct {
	api upstream.DocumentosAPI
}

func NewDocumentosHandler(api upstream.DocumentosAPI) *DocumentosHandler {
	return &DocumentosHandler{api: api}
}

func (h *DocumentosHandler) Listar(c *gin.Context) {
	owner, ok := propietarioDesdeQuery(c)
	if !ok {
		return
	}
	docs, err := h.api.PorPropietario(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al listar documentos"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": docs})
}

func (h *DocumentosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	doc, err := h.api.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Documento no encontrado"))
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentosHandler) Subir(c *gin.Context) {
	var req dto.SubirFotoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parámetros inválidos"))
		return
	}
	if (req.IDPieza == nil) == (req.IDVehiculo == nil) {
		c.JSON(http.StatusBadRequest, apierror.New("Debe indicarse id_pieza o id_vehiculo, pero no ambos"))
		return
	}
	owner := upstream.PropietarioFoto{IDPieza: req.IDPieza, IDVehiculo: req.IDVehiculo}
	tipo := c.PostForm("tipo_documento")
	if tipo == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Falta el campo 'tipo_documento'"))
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

	doc, err := h.api.Subir(c.Request.Context(), owner, tipo, fileHeader.Filename, archivo)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al subir el documento"))
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.api.Delete(c.Request.Context(), id); err != nil {
		if upstream.EsNoEncontrado(err) {
			c.JSON(http.StatusNotFound, apierror.New("Documento no encontrado"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error al eliminar el documento"))
		return
	}
	c.Status(http.StatusNoContent)
}
