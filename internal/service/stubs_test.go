package service

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

var errRed = errors.New("connection refused")

// stubVehiculosAPI is an in-memory VehiculosAPI whose fetches can be forced
// to fail to exercise the fallback paths.
type stubVehiculosAPI struct {
	vehiculos []model.Vehiculo
	caido     bool
	deleteErr error
}

func (s *stubVehiculosAPI) GetAll(_ context.Context, _ upstream.VehiculoFiltro, pag upstream.PaginacionQuery) (*upstream.Pagina[model.Vehiculo], error) {
	if s.caido {
		return nil, errRed
	}
	bloque := model.Paginacion{Page: pag.Page, Limit: pag.Limit, Total: len(s.vehiculos)}
	return &upstream.Pagina[model.Vehiculo]{
		Data:       append([]model.Vehiculo(nil), s.vehiculos...),
		Paginacion: bloque.Normalizar(len(s.vehiculos)),
	}, nil
}

func (s *stubVehiculosAPI) GetByID(_ context.Context, id int64) (*model.Vehiculo, error) {
	if s.caido {
		return nil, errRed
	}
	for _, v := range s.vehiculos {
		if v.ID == id {
			v := v
			return &v, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubVehiculosAPI) Create(_ context.Context, v *model.Vehiculo) (*model.Vehiculo, error) {
	if s.caido {
		return nil, errRed
	}
	creado := *v
	creado.ID = int64(1000 + len(s.vehiculos))
	s.vehiculos = append(s.vehiculos, creado)
	return &creado, nil
}

func (s *stubVehiculosAPI) Update(_ context.Context, id int64, cambios map[string]any) (*model.Vehiculo, error) {
	if s.caido {
		return nil, errRed
	}
	for i := range s.vehiculos {
		if s.vehiculos[i].ID == id {
			if marca, ok := cambios["marca"].(string); ok {
				s.vehiculos[i].Marca = marca
			}
			v := s.vehiculos[i]
			return &v, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubVehiculosAPI) Delete(_ context.Context, id int64) error {
	if s.caido {
		return errRed
	}
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.vehiculos {
		if s.vehiculos[i].ID == id {
			s.vehiculos = append(s.vehiculos[:i], s.vehiculos[i+1:]...)
			return nil
		}
	}
	return &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

var _ upstream.VehiculosAPI = (*stubVehiculosAPI)(nil)

// stubPiezasAPI serves a fixed pieza set, keyed by vehicle for PorVehiculo.
type stubPiezasAPI struct {
	piezas    []model.Pieza
	caido     bool
	borradas  []int64
	deleteErr error

	// listadosPorVehiculo counts PorVehiculo calls; atomic because the
	// enrichment fan-out reads it from several goroutines.
	listadosPorVehiculo atomic.Int64
}

func (s *stubPiezasAPI) GetAll(_ context.Context, _ upstream.PiezaFiltro, pag upstream.PaginacionQuery) (*upstream.Pagina[model.Pieza], error) {
	if s.caido {
		return nil, errRed
	}
	bloque := model.Paginacion{Page: pag.Page, Limit: pag.Limit, Total: len(s.piezas)}
	return &upstream.Pagina[model.Pieza]{
		Data:       append([]model.Pieza(nil), s.piezas...),
		Paginacion: bloque.Normalizar(len(s.piezas)),
	}, nil
}

func (s *stubPiezasAPI) GetByID(_ context.Context, id int64) (*model.Pieza, error) {
	if s.caido {
		return nil, errRed
	}
	for _, p := range s.piezas {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrada"}
}

func (s *stubPiezasAPI) PorVehiculo(_ context.Context, idVehiculo int64) ([]model.Pieza, error) {
	s.listadosPorVehiculo.Add(1)
	if s.caido {
		return nil, errRed
	}
	var out []model.Pieza
	for _, p := range s.piezas {
		if p.IDVehiculo != nil && *p.IDVehiculo == idVehiculo {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPiezasAPI) Create(_ context.Context, p *model.Pieza) (*model.Pieza, error) {
	creada := *p
	creada.ID = int64(len(s.piezas) + 1)
	s.piezas = append(s.piezas, creada)
	return &creada, nil
}

func (s *stubPiezasAPI) Update(_ context.Context, id int64, _ map[string]any) (*model.Pieza, error) {
	return s.GetByID(context.Background(), id)
}

func (s *stubPiezasAPI) Delete(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.borradas = append(s.borradas, id)
	for i := range s.piezas {
		if s.piezas[i].ID == id {
			s.piezas = append(s.piezas[:i], s.piezas[i+1:]...)
			break
		}
	}
	return nil
}

var _ upstream.PiezasAPI = (*stubPiezasAPI)(nil)

// stubFotosAPI records Update calls so tests can assert the demote-then-
// promote order of MarcarPrincipal.
type stubFotosAPI struct {
	fotos   map[int64]*model.Foto
	updates []int64
}

func newStubFotosAPI(fotos ...model.Foto) *stubFotosAPI {
	s := &stubFotosAPI{fotos: make(map[int64]*model.Foto)}
	for i := range fotos {
		f := fotos[i]
		s.fotos[f.ID] = &f
	}
	return s
}

func (s *stubFotosAPI) PorPropietario(_ context.Context, owner upstream.PropietarioFoto) ([]model.Foto, error) {
	var out []model.Foto
	for _, f := range s.fotos {
		switch {
		case owner.IDPieza != nil && f.IDPieza != nil && *owner.IDPieza == *f.IDPieza:
			out = append(out, *f)
		case owner.IDVehiculo != nil && f.IDVehiculo != nil && *owner.IDVehiculo == *f.IDVehiculo:
			out = append(out, *f)
		}
	}
	return out, nil
}

func (s *stubFotosAPI) GetByID(_ context.Context, id int64) (*model.Foto, error) {
	if f, ok := s.fotos[id]; ok {
		copia := *f
		return &copia, nil
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrada"}
}

func (s *stubFotosAPI) Subir(_ context.Context, owner upstream.PropietarioFoto, nombre string, _ io.Reader) (*model.Foto, error) {
	f := model.Foto{ID: int64(len(s.fotos) + 1), IDPieza: owner.IDPieza, IDVehiculo: owner.IDVehiculo, Nombre: nombre}
	s.fotos[f.ID] = &f
	return &f, nil
}

func (s *stubFotosAPI) Update(_ context.Context, id int64, cambios map[string]any) (*model.Foto, error) {
	f, ok := s.fotos[id]
	if !ok {
		return nil, &upstream.Error{Status: 404, Detalle: "no encontrada"}
	}
	if principal, ok := cambios["es_principal"].(bool); ok {
		f.EsPrincipal = principal
	}
	s.updates = append(s.updates, id)
	copia := *f
	return &copia, nil
}

func (s *stubFotosAPI) Delete(_ context.Context, id int64) error {
	delete(s.fotos, id)
	return nil
}

var _ upstream.FotosAPI = (*stubFotosAPI)(nil)

// stubPedidosAPI serves a fixed pedido set, keyed by pieza for PorPieza.
type stubPedidosAPI struct {
	pedidos []model.Pedido
	caido   bool
}

func (s *stubPedidosAPI) GetAll(_ context.Context, _ upstream.PedidoFiltro, pag upstream.PaginacionQuery) (*upstream.Pagina[model.Pedido], error) {
	if s.caido {
		return nil, errRed
	}
	bloque := model.Paginacion{Page: pag.Page, Limit: pag.Limit, Total: len(s.pedidos)}
	return &upstream.Pagina[model.Pedido]{
		Data:       append([]model.Pedido(nil), s.pedidos...),
		Paginacion: bloque.Normalizar(len(s.pedidos)),
	}, nil
}

func (s *stubPedidosAPI) GetByID(_ context.Context, id int64) (*model.Pedido, error) {
	if s.caido {
		return nil, errRed
	}
	for _, p := range s.pedidos {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubPedidosAPI) PorPieza(_ context.Context, idPieza int64) ([]model.Pedido, error) {
	if s.caido {
		return nil, errRed
	}
	var out []model.Pedido
	for _, p := range s.pedidos {
		if p.IDPieza == idPieza {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPedidosAPI) Create(_ context.Context, p *model.Pedido) (*model.Pedido, error) {
	creado := *p
	creado.ID = int64(len(s.pedidos) + 1)
	s.pedidos = append(s.pedidos, creado)
	return &creado, nil
}

func (s *stubPedidosAPI) Update(_ context.Context, id int64, cambios map[string]any) (*model.Pedido, error) {
	for i := range s.pedidos {
		if s.pedidos[i].ID == id {
			if estado, ok := cambios["estado"].(string); ok {
				s.pedidos[i].Estado = model.EstadoPedido(estado)
			}
			p := s.pedidos[i]
			return &p, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubPedidosAPI) Delete(_ context.Context, id int64) error { return nil }

var _ upstream.PedidosAPI = (*stubPedidosAPI)(nil)

// memSnapshotStore is an in-memory cache.SnapshotStore.
type memSnapshotStore struct {
	datos map[string][]byte
}

func newMemSnapshotStore() *memSnapshotStore {
	return &memSnapshotStore{datos: make(map[string][]byte)}
}

func (s *memSnapshotStore) Guardar(_ context.Context, clave string, datos []byte) error {
	s.datos[clave] = datos
	return nil
}

func (s *memSnapshotStore) Recuperar(_ context.Context, clave string) ([]byte, error) {
	if d, ok := s.datos[clave]; ok {
		return d, nil
	}
	return nil, cache.ErrSnapshotVacio
}

var _ cache.SnapshotStore = (*memSnapshotStore)(nil)

// stubClientesAPI is an in-memory ClientesAPI; Update records the field set
// it received so tests can assert the partial-update payload.
type stubClientesAPI struct {
	clientes []model.Cliente
	caido    bool
	cambios  map[string]any
	borrados []int64
}

func (s *stubClientesAPI) GetAll(_ context.Context, filtro upstream.ClienteFiltro, pag upstream.PaginacionQuery) (*upstream.Pagina[model.Cliente], error) {
	if s.caido {
		return nil, errRed
	}
	var pagina []model.Cliente
	for _, c := range s.clientes {
		if filtro.TipoCliente != "" && string(c.TipoCliente) != filtro.TipoCliente {
			continue
		}
		pagina = append(pagina, c)
	}
	bloque := model.Paginacion{Page: pag.Page, Limit: pag.Limit, Total: len(pagina)}
	return &upstream.Pagina[model.Cliente]{Data: pagina, Paginacion: bloque.Normalizar(len(pagina))}, nil
}

func (s *stubClientesAPI) GetByID(_ context.Context, id int64) (*model.Cliente, error) {
	if s.caido {
		return nil, errRed
	}
	for _, c := range s.clientes {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubClientesAPI) Create(_ context.Context, c *model.Cliente) (*model.Cliente, error) {
	if s.caido {
		return nil, errRed
	}
	creado := *c
	creado.ID = int64(1000 + len(s.clientes))
	s.clientes = append(s.clientes, creado)
	return &creado, nil
}

func (s *stubClientesAPI) Update(_ context.Context, id int64, cambios map[string]any) (*model.Cliente, error) {
	if s.caido {
		return nil, errRed
	}
	s.cambios = cambios
	return s.GetByID(context.Background(), id)
}

func (s *stubClientesAPI) Delete(_ context.Context, id int64) error {
	if s.caido {
		return errRed
	}
	s.borrados = append(s.borrados, id)
	return nil
}

var _ upstream.ClientesAPI = (*stubClientesAPI)(nil)

// stubIncidenciasAPI is an in-memory IncidenciasAPI.
type stubIncidenciasAPI struct {
	incidencias []model.Incidencia
	caido       bool
	cambios     map[string]any
	filtro      upstream.IncidenciaFiltro
}

func (s *stubIncidenciasAPI) GetAll(_ context.Context, filtro upstream.IncidenciaFiltro, pag upstream.PaginacionQuery) (*upstream.Pagina[model.Incidencia], error) {
	if s.caido {
		return nil, errRed
	}
	s.filtro = filtro
	bloque := model.Paginacion{Page: pag.Page, Limit: pag.Limit, Total: len(s.incidencias)}
	return &upstream.Pagina[model.Incidencia]{
		Data:       append([]model.Incidencia(nil), s.incidencias...),
		Paginacion: bloque.Normalizar(len(s.incidencias)),
	}, nil
}

func (s *stubIncidenciasAPI) GetByID(_ context.Context, id int64) (*model.Incidencia, error) {
	if s.caido {
		return nil, errRed
	}
	for _, i := range s.incidencias {
		if i.ID == id {
			i := i
			return &i, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubIncidenciasAPI) Create(_ context.Context, i *model.Incidencia) (*model.Incidencia, error) {
	if s.caido {
		return nil, errRed
	}
	creada := *i
	creada.ID = int64(500 + len(s.incidencias))
	s.incidencias = append(s.incidencias, creada)
	return &creada, nil
}

func (s *stubIncidenciasAPI) Update(_ context.Context, id int64, cambios map[string]any) (*model.Incidencia, error) {
	if s.caido {
		return nil, errRed
	}
	s.cambios = cambios
	for i := range s.incidencias {
		if s.incidencias[i].ID == id {
			if estado, ok := cambios["estado"].(string); ok {
				s.incidencias[i].Estado = model.EstadoIncidencia(estado)
			}
			inc := s.incidencias[i]
			return &inc, nil
		}
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubIncidenciasAPI) Delete(_ context.Context, id int64) error { return nil }

var _ upstream.IncidenciasAPI = (*stubIncidenciasAPI)(nil)

// stubWooAPI is an in-memory WooAPI for the synchronous bridge calls.
type stubWooAPI struct {
	estados   map[int64]*upstream.WooEstado
	retiradas []int64
	caido     bool
}

func (s *stubWooAPI) Publicar(_ context.Context, _ upstream.WooProducto) (*upstream.WooEstado, error) {
	if s.caido {
		return nil, errRed
	}
	return &upstream.WooEstado{Sincronizado: true}, nil
}

func (s *stubWooAPI) Estado(_ context.Context, idPieza int64) (*upstream.WooEstado, error) {
	if s.caido {
		return nil, errRed
	}
	if estado, ok := s.estados[idPieza]; ok {
		return estado, nil
	}
	return nil, &upstream.Error{Status: 404, Detalle: "no encontrado"}
}

func (s *stubWooAPI) Retirar(_ context.Context, idPieza int64) error {
	if s.caido {
		return errRed
	}
	s.retiradas = append(s.retiradas, idPieza)
	return nil
}

var _ upstream.WooAPI = (*stubWooAPI)(nil)
