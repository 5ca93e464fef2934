package service

import (
	"context"
	"fmt"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/worker"
)

// WooService is the thin admin surface over the WooCommerce bridge:
// publication goes through the job queue (with retry/backoff), status and
// withdrawal are synchronous.
type WooService interface {
	Publicar(ctx context.Context, idPieza int64) error
	Estado(ctx context.Context, idPieza int64) (*upstream.WooEstado, error)
	Retirar(ctx context.Context, idPieza int64) error
}

type wooService struct {
	piezas     upstream.PiezasAPI
	woo        upstream.WooAPI
	dispatcher *worker.Dispatcher
}

func NewWooService(piezas upstream.PiezasAPI, woo upstream.WooAPI, dispatcher *worker.Dispatcher) WooService {
	return &wooService{piezas: piezas, woo: woo, dispatcher: dispatcher}
}

// Publicar verifies the pieza exists, then queues the sync job.
func (s *wooService) Publicar(ctx context.Context, idPieza int64) error {
	if _, err := s.piezas.GetByID(ctx, idPieza); err != nil {
		return fmt.Errorf("publicar en woocommerce: %w", err)
	}
	if s.dispatcher == nil {
		return fmt.Errorf("publicar en woocommerce: cola de trabajos no disponible")
	}
	return s.dispatcher.EnqueueWooSync(ctx, idPieza)
}

func (s *wooService) Estado(ctx context.Context, idPieza int64) (*upstream.WooEstado, error) {
	return s.woo.Estado(ctx, idPieza)
}

func (s *wooService) Retirar(ctx context.Context, idPieza int64) error {
	return s.woo.Retirar(ctx, idPieza)
}
