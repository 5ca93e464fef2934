package service

import (
	"context"
	"fmt"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/dto"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// ClienteService is the customers CRUD. The identification fields that are
// mandatory depend on tipo_cliente: DNI + nombre for particulares, CIF +
// razón social for empresas.
type ClienteService interface {
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	ObtenerPorID(ctx context.Context, id int64) (*model.Cliente, error)
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error)
	Actualizar(ctx context.Context, id int64, req dto.ActualizarClienteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id int64) error
}

type clienteService struct {
	api    upstream.ClientesAPI
	mirror *cache.Mirror[model.Cliente]
}

func NewClienteService(api upstream.ClientesAPI, mirror *cache.Mirror[model.Cliente]) ClienteService {
	return &clienteService{api: api, mirror: mirror}
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	pagina, err := s.api.GetAll(ctx, upstream.ClienteFiltro{TipoCliente: filter.TipoCliente},
		upstream.PaginacionQuery{Page: filter.Page, Limit: filter.Limit, Count: true})
	if err != nil {
		return nil, err
	}
	s.mirror.UpsertTodos(pagina.Data)
	return &dto.ClienteListResponse{Data: pagina.Data, Paginacion: pagina.Paginacion}, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id int64) (*model.Cliente, error) {
	// No cache fallback here: only vehicle reads degrade to stale data,
	// a cliente fetch failure surfaces as-is.
	cliente, err := s.api.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mirror.Upsert(*cliente)
	return cliente, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*model.Cliente, error) {
	tipo := model.TipoCliente(req.TipoCliente)
	if !tipo.Valido() {
		return nil, ErrEstadoInvalido
	}
	switch tipo {
	case model.ClienteParticular:
		if req.DNI == "" || req.Nombre == "" {
			return nil, ErrClienteIncompleto
		}
	case model.ClienteEmpresa:
		if req.CIF == "" || req.RazonSocial == "" {
			return nil, ErrClienteIncompleto
		}
	}

	creado, err := s.api.Create(ctx, &model.Cliente{
		TipoCliente: tipo,
		Nombre:      req.Nombre,
		Apellidos:   req.Apellidos,
		DNI:         req.DNI,
		RazonSocial: req.RazonSocial,
		CIF:         req.CIF,
		Email:       req.Email,
		Telefono:    req.Telefono,
		Direccion:   req.Direccion,
	})
	if err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	s.mirror.Upsert(*creado)
	return creado, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id int64, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	actualizado, err := s.api.Update(ctx, id, req.Cambios())
	if err != nil {
		return nil, fmt.Errorf("actualizar cliente %d: %w", id, err)
	}
	s.mirror.Upsert(*actualizado)
	return actualizado, nil
}

func (s *clienteService) Eliminar(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar cliente %d: %w", id, err)
	}
	s.mirror.Remove(id)
	return nil
}
