package handler

import (
	"net/http"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"

	"github.com/gin-gonic/gin"
)

// ConfiguracionHandler relays the backend's configuration sections (empresa
// data, catalog settings, woo credentials). Values are free-form JSON: the
// BFF neither interprets nor caches them.
type ConfiguracionHandler struct {
	api upstream.ConfiguracionAPI
}

func NewConfiguracionHandler(api upstream.ConfiguracionAPI) *ConfiguracionHandler {
	return &ConfiguracionHandler{api: api}
}

func (h *ConfiguracionHandler) Obtener(c *gin.Context) {
	seccion := c.Param("seccion")
	valores, err := h.api.Obtener(c.Request.Context(), seccion)
	if err != nil {
		if upstream.EsNoEncontrado(err) {
			c.JSON(http.StatusNotFound, apierror.New("Sección de configuración no encontrada"))
			return
		}
		c.JSON(http.StatusBadGateway, apierror.New("Error al leer la configuración"))
		return
	}
	c.JSON(http.StatusOK, valores)
}

func (h *ConfiguracionHandler) Guardar(c *gin.Context) {
	seccion := c.Param("seccion")
	var valores map[string]any
	if err := c.ShouldBindJSON(&valores); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("El cuerpo debe ser un objeto JSON"))
		return
	}
	if err := h.api.Guardar(c.Request.Context(), seccion, valores); err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Error al guardar la configuración"))
		return
	}
	c.JSON(http.StatusOK, valores)
}
