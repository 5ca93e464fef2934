package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/upstream"
)

// FotoService handles uploads and the es_principal invariant: at most one
// principal photo per owning entity, enforced by MarcarPrincipal flipping
// every sibling to false before (idempotently) setting the chosen one.
type FotoService interface {
	ListarPorPropietario(ctx context.Context, owner upstream.PropietarioFoto) ([]model.Foto, error)
	Subir(ctx context.Context, owner upstream.PropietarioFoto, nombre string, archivo io.Reader) (*model.Foto, error)
	MarcarPrincipal(ctx context.Context, fotoID int64) (*model.Foto, error)
	Eliminar(ctx context.Context, id int64) error
}

type fotoService struct {
	api upstream.FotosAPI
}

func NewFotoService(api upstream.FotosAPI) FotoService {
	return &fotoService{api: api}
}

func (s *fotoService) ListarPorPropietario(ctx context.Context, owner upstream.PropietarioFoto) ([]model.Foto, error) {
	if (owner.IDPieza == nil) == (owner.IDVehiculo == nil) {
		return nil, ErrPropietarioAmbiguo
	}
	return s.api.PorPropietario(ctx, owner)
}

func (s *fotoService) Subir(ctx context.Context, owner upstream.PropietarioFoto, nombre string, archivo io.Reader) (*model.Foto, error) {
	if (owner.IDPieza == nil) == (owner.IDVehiculo == nil) {
		return nil, ErrPropietarioAmbiguo
	}
	foto, err := s.api.Subir(ctx, owner, nombre, archivo)
	if err != nil {
		return nil, fmt.Errorf("subir foto: %w", err)
	}
	return foto, nil
}

// MarcarPrincipal flips all siblings of the photo to es_principal=false and
// the photo itself to true. Running it twice yields the same end state:
// siblings already false are skipped and the target update is a no-op the
// second time.
func (s *fotoService) MarcarPrincipal(ctx context.Context, fotoID int64) (*model.Foto, error) {
	foto, err := s.api.GetByID(ctx, fotoID)
	if err != nil {
		return nil, fmt.Errorf("marcar principal: %w", err)
	}

	owner := upstream.PropietarioFoto{IDPieza: foto.IDPieza, IDVehiculo: foto.IDVehiculo}
	if owner.IDPieza == nil && owner.IDVehiculo == nil {
		return nil, ErrFotoSinPropietario
	}

	hermanas, err := s.api.PorPropietario(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("marcar principal: listar hermanas: %w", err)
	}

	// Demote siblings first so a failure mid-way can leave zero principals
	// but never two.
	for _, hermana := range hermanas {
		if hermana.ID == fotoID || !hermana.EsPrincipal {
			continue
		}
		if _, err := s.api.Update(ctx, hermana.ID, map[string]any{"es_principal": false}); err != nil {
			return nil, fmt.Errorf("marcar principal: degradar foto %d: %w", hermana.ID, err)
		}
	}

	actualizada, err := s.api.Update(ctx, fotoID, map[string]any{"es_principal": true})
	if err != nil {
		return nil, fmt.Errorf("marcar principal: promover foto %d: %w", fotoID, err)
	}

	log.Info().Int64("id_foto", fotoID).Msg("fotos: foto principal establecida")
	return actualizada, nil
}

func (s *fotoService) Eliminar(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, id)
}
