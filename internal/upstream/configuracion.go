package upstream

import (
	"context"
	"net/http"
)

// ConfiguracionAPI reads and writes the upstream's keyed configuration
// sections (/configuracion/{seccion}): empresa data, catalog settings,
// WooCommerce credentials, etc. Values are free-form JSON objects owned by
// the upstream; this client does not interpret them.
type ConfiguracionAPI interface {
	Obtener(ctx context.Context, seccion string) (map[string]any, error)
	Guardar(ctx context.Context, seccion string, valores map[string]any) error
}

type configuracionAPI struct{ c *Client }

func (c *Client) Configuracion() ConfiguracionAPI { return &configuracionAPI{c: c} }

func (a *configuracionAPI) Obtener(ctx context.Context, seccion string) (map[string]any, error) {
	var valores map[string]any
	if err := a.c.do(ctx, http.MethodGet, "/configuracion/"+seccion, nil, nil, &valores); err != nil {
		return nil, err
	}
	return valores, nil
}

func (a *configuracionAPI) Guardar(ctx context.Context, seccion string, valores map[string]any) error {
	return a.c.do(ctx, http.MethodPut, "/configuracion/"+seccion, nil, valores, nil)
}
