package handler

import (
	"net/http"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogoHandler serves the public parts storefront: cascading filters,
// pagination recomputed over the filtered subset and one principal photo
// per pieza. No token required.
type CatalogoHandler struct {
	svc service.CatalogoService
}

func NewCatalogoHandler(svc service.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{svc: svc}
}

func (h *CatalogoHandler) Listar(c *gin.Context) {
	var filter dto.CatalogoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusBadGateway, apierror.New("Catálogo no disponible"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
