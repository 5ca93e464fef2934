package dto

import "github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"

// CrearClienteRequest carries both particular and empresa identification;
// which block is required depends on tipo_cliente and is validated in the
// service (validator tags cannot express the conditional).
type CrearClienteRequest struct {
	TipoCliente string `json:"tipo_cliente" validate:"required,oneof=particular empresa"`
	Nombre      string `json:"nombre"`
	Apellidos   string `json:"apellidos"`
	DNI         string `json:"dni"`
	RazonSocial string `json:"razon_social"`
	CIF         string `json:"cif"`
	Email       string `json:"email"        validate:"omitempty,email"`
	Telefono    string `json:"telefono"`
	Direccion   string `json:"direccion"`
}

type ActualizarClienteRequest struct {
	Nombre      *string `json:"nombre"`
	Apellidos   *string `json:"apellidos"`
	DNI         *string `json:"dni"`
	RazonSocial *string `json:"razon_social"`
	CIF         *string `json:"cif"`
	Email       *string `json:"email"     validate:"omitempty,email"`
	Telefono    *string `json:"telefono"`
	Direccion   *string `json:"direccion"`
}

func (r ActualizarClienteRequest) Cambios() map[string]any {
	cambios := map[string]any{}
	if r.Nombre != nil {
		cambios["nombre"] = *r.Nombre
	}
	if r.Apellidos != nil {
		cambios["apellidos"] = *r.Apellidos
	}
	if r.DNI != nil {
		cambios["dni"] = *r.DNI
	}
	if r.RazonSocial != nil {
		cambios["razon_social"] = *r.RazonSocial
	}
	if r.CIF != nil {
		cambios["cif"] = *r.CIF
	}
	if r.Email != nil {
		cambios["email"] = *r.Email
	}
	if r.Telefono != nil {
		cambios["telefono"] = *r.Telefono
	}
	if r.Direccion != nil {
		cambios["direccion"] = *r.Direccion
	}
	return cambios
}

type ClienteFilter struct {
	TipoCliente string `form:"tipo_cliente"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type ClienteListResponse struct {
	Data       []model.Cliente  `json:"data"`
	Paginacion model.Paginacion `json:"pagination"`
}
