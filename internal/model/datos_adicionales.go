package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OrigenVehiculo is the vehicle-origin metadata the backend duplicates into
// Pieza.DatosAdicionales so the storefront can show provenance without a
// second fetch.
type OrigenVehiculo struct {
	Marca           string `json:"marca"`
	Modelo          string `json:"modelo"`
	Version         string `json:"version"`
	AnioFabricacion int    `json:"anio_fabricacion"`
	TipoCombustible string `json:"tipo_combustible"`
	Matricula       string `json:"matricula"`
}

// ParsearDatosAdicionales decodes the JSON-encoded origin blob. Payloads
// written through certain backend paths arrive with doubled backslashes
// (`{\"marca\":...}` escaped twice); one repair attempt collapses those
// before giving up. Callers treat an error as "no origin data".
func ParsearDatosAdicionales(raw string) (OrigenVehiculo, error) {
	var origen OrigenVehiculo
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return origen, nil
	}

	if err := json.Unmarshal([]byte(raw), &origen); err == nil {
		return origen, nil
	}

	// Known corruption: every quote/backslash escaped one level too many,
	// sometimes with the whole object wrapped in an extra pair of quotes.
	reparado := strings.ReplaceAll(raw, `\\`, `\`)
	reparado = strings.ReplaceAll(reparado, `\"`, `"`)
	reparado = strings.Trim(reparado, `"`)

	if err := json.Unmarshal([]byte(reparado), &origen); err != nil {
		return OrigenVehiculo{}, fmt.Errorf("datos_adicionales ilegible: %w", err)
	}
	return origen, nil
}
