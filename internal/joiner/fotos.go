package joiner

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

// MaxFotosVehiculo is how many aggregated photos a vehicle card keeps.
const MaxFotosVehiculo = 5

// FotosVehiculo aggregates a vehicle's photo set from all the piezas that
// belong to it (part photos double as vehicle images): a two-level fan-out
// vehiculo → piezas → fotos. Fetch functions are injected so the joiner
// stays independent of the transport.
type FotosVehiculo struct {
	PiezasDe func(ctx context.Context, idVehiculo int64) ([]model.Pieza, error)
	FotosDe  func(ctx context.Context, idPieza int64) ([]model.Foto, error)
	Max      int // photos kept after sorting; <=0 means MaxFotosVehiculo
	Limite   int // concurrent foto fetches; <=0 means LimiteDefecto
}

// Recolectar returns the newest Max photos across the vehicle's piezas,
// sorted by upload date descending. The sort is stable: photos sharing a
// timestamp keep their input (pieza, then foto) order. Any failure — the
// pieza listing or a single pieza's foto fetch — degrades to fewer photos,
// never to an error.
func (f FotosVehiculo) Recolectar(ctx context.Context, idVehiculo int64) []model.Foto {
	piezas, err := f.PiezasDe(ctx, idVehiculo)
	if err != nil {
		log.Debug().Err(err).Int64("id_vehiculo", idVehiculo).Msg("joiner: sin piezas para agregar fotos")
		return nil
	}
	return f.RecolectarDe(ctx, piezas)
}

// RecolectarDe aggregates photos from an already-fetched pieza list, so a
// caller that needs the piezas for something else (the parts count) does
// not pay the listing fetch twice.
func (f FotosVehiculo) RecolectarDe(ctx context.Context, piezas []model.Pieza) []model.Foto {
	if len(piezas) == 0 {
		return nil
	}

	// Second level: one foto fetch per pieza, order-preserving.
	porPieza := Enriquecer(ctx, piezas, f.Limite, func(ctx context.Context, p model.Pieza) (model.Pieza, error) {
		fotos, err := f.FotosDe(ctx, p.ID)
		if err != nil {
			return p, err
		}
		p.Fotos = fotos
		return p, nil
	})

	var fotos []model.Foto
	for _, p := range porPieza {
		fotos = append(fotos, p.Fotos...)
	}

	sort.SliceStable(fotos, func(i, j int) bool {
		return fotos[i].FechaSubida.After(fotos[j].FechaSubida)
	})

	max := f.Max
	if max <= 0 {
		max = MaxFotosVehiculo
	}
	if len(fotos) > max {
		fotos = fotos[:max]
	}
	return fotos
}
