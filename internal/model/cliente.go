package model

import "time"

// TipoCliente distinguishes individual buyers from companies; the set of
// identification fields that apply depends on it.
type TipoCliente string

const (
	ClienteParticular TipoCliente = "particular"
	ClienteEmpresa    TipoCliente = "empresa"
)

func (t TipoCliente) Valido() bool {
	return t == ClienteParticular || t == ClienteEmpresa
}

// Cliente is a customer of the desguace — either a particular (DNI,
// nombre/apellidos) or an empresa (CIF, razón social).
type Cliente struct {
	ID            int64       `json:"id"`
	TipoCliente   TipoCliente `json:"tipo_cliente"`
	Nombre        string      `json:"nombre"`
	Apellidos     string      `json:"apellidos"`
	DNI           string      `json:"dni"`
	RazonSocial   string      `json:"razon_social"`
	CIF           string      `json:"cif"`
	Email         string      `json:"email"`
	Telefono      string      `json:"telefono"`
	Direccion     string      `json:"direccion"`
	FechaCreacion time.Time   `json:"fecha_creacion"`
}

func (c Cliente) Clave() int64 { return c.ID }
