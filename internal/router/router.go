package router

import (
	"time"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/bus"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/cache"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/config"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/handler"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/infra"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/middleware"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/service"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps are the shared singletons built in main: the composition root also
// hands them to the worker pool, so they cannot live inside New.
type Deps struct {
	RDB        *redis.Client
	BackendCB  *infra.CircuitBreaker
	Snapshots  cache.SnapshotStore
	Eventos    *bus.Bus
	Dispatcher *worker.Dispatcher

	// MirrorVehiculos is shared with the enrichment worker so background
	// updates land in the same cache the list endpoints read.
	MirrorVehiculos *cache.Mirror[model.Vehiculo]
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Upstream client/Mirror ← Backend/Redis
func New(cfg *config.Config, deps *Deps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Upstream client ──────────────────────────────────────────────────────
	client := upstream.NewClient(cfg.BackendURL, deps.BackendCB)
	vehiculosAPI := client.Vehiculos()
	piezasAPI := client.Piezas()
	fotosAPI := client.Fotos()
	pedidosAPI := client.Pedidos()
	clientesAPI := client.Clientes()
	documentosAPI := client.Documentos()
	incidenciasAPI := client.Incidencias()
	wooAPI := client.Woo()

	// ── Mirrors ──────────────────────────────────────────────────────────────
	mirrorPiezas := nuevoMirror[model.Pieza](cfg.CacheCapacity)
	mirrorPedidos := nuevoMirror[model.Pedido](cfg.CacheCapacity)
	mirrorClientes := nuevoMirror[model.Cliente](cfg.CacheCapacity)

	// ── Services ─────────────────────────────────────────────────────────────
	vehiculoSvc := service.NewVehiculoService(vehiculosAPI, piezasAPI, fotosAPI,
		deps.MirrorVehiculos, deps.Snapshots, deps.Dispatcher, deps.Eventos)
	piezaSvc := service.NewPiezaService(piezasAPI, pedidosAPI, mirrorPiezas)
	catalogoSvc := service.NewCatalogoService(piezasAPI, fotosAPI)
	fotoSvc := service.NewFotoService(fotosAPI)
	pedidoSvc := service.NewPedidoService(pedidosAPI, mirrorPedidos)
	clienteSvc := service.NewClienteService(clientesAPI, mirrorClientes)
	incidenciaSvc := service.NewIncidenciaService(incidenciasAPI, deps.Dispatcher)
	wooSvc := service.NewWooService(piezasAPI, wooAPI, deps.Dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	vehiculosH := handler.NewVehiculosHandler(vehiculoSvc)
	piezasH := handler.NewPiezasHandler(piezaSvc, wooSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)
	fotosH := handler.NewFotosHandler(fotoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	incidenciasH := handler.NewIncidenciasHandler(incidenciaSvc)
	documentosH := handler.NewDocumentosHandler(documentosAPI)
	configuracionH := handler.NewConfiguracionHandler(client.Configuracion())
	eventosH := handler.NewEventosHandler(deps.Eventos)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(deps.RDB, deps.BackendCB, deps.Eventos))
	r.GET("/catalogo", middleware.CatalogoRateLimiter(), catalogoH.Listar)

	// Protected routes: the token travels with the request context and the
	// backend decides whether it is valid.
	v1 := r.Group("/v1", middleware.TokenPassthrough())
	{
		v1.GET("/eventos/vehiculos", eventosH.Vehiculos)

		vehiculos := v1.Group("/vehiculos")
		{
			vehiculos.GET("", vehiculosH.Listar)
			vehiculos.GET("/:id", vehiculosH.ObtenerPorID)
			vehiculos.POST("", vehiculosH.Crear)
			vehiculos.PUT("/:id", vehiculosH.Actualizar)
			vehiculos.DELETE("/:id", vehiculosH.Eliminar)
		}

		piezas := v1.Group("/piezas")
		{
			piezas.GET("", piezasH.Listar)
			piezas.GET("/:id", piezasH.ObtenerPorID)
			piezas.POST("", piezasH.Crear)
			piezas.PUT("/:id", piezasH.Actualizar)
			piezas.DELETE("/:id", piezasH.Eliminar)
			piezas.POST("/:id/woo", piezasH.PublicarEnWoo)
			piezas.GET("/:id/woo", piezasH.EstadoWoo)
			piezas.DELETE("/:id/woo", piezasH.RetirarDeWoo)
		}

		fotos := v1.Group("/fotos")
		{
			fotos.GET("", fotosH.Listar)
			fotos.POST("", fotosH.Subir)
			fotos.PUT("/:id/principal", fotosH.MarcarPrincipal)
			fotos.DELETE("/:id", fotosH.Eliminar)
		}

		documentos := v1.Group("/documentos")
		{
			documentos.GET("", documentosH.Listar)
			documentos.GET("/:id", documentosH.ObtenerPorID)
			documentos.POST("", documentosH.Subir)
			documentos.DELETE("/:id", documentosH.Eliminar)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.ObtenerPorID)
			pedidos.POST("", pedidosH.Crear)
			pedidos.PUT("/:id/estado", pedidosH.CambiarEstado)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.POST("", clientesH.Crear)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		configuracion := v1.Group("/configuracion")
		{
			configuracion.GET("/:seccion", configuracionH.Obtener)
			configuracion.PUT("/:seccion", configuracionH.Guardar)
		}

		incidencias := v1.Group("/incidencias")
		{
			incidencias.GET("", incidenciasH.Listar)
			incidencias.GET("/:id", incidenciasH.ObtenerPorID)
			incidencias.POST("", incidenciasH.Crear)
			incidencias.PUT("/:id/estado", incidenciasH.CambiarEstado)
		}
	}

	return r
}

func nuevoMirror[T cache.Identificable](capacity int) *cache.Mirror[T] {
	if capacity > 0 {
		return cache.NewMirrorConCapacidad[T](capacity)
	}
	return cache.NewMirror[T]()
}
