package filtro

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"
)

func piezaDeOrigen(id int64, tipo string, origen model.OrigenVehiculo, precio string) model.Pieza {
	raw, _ := json.Marshal(origen)
	return model.Pieza{
		ID:               id,
		TipoPieza:        tipo,
		Estado:           model.PiezaUsada,
		PrecioVenta:      decimal.RequireFromString(precio),
		DatosAdicionales: string(raw),
	}
}

func TestFiltrarPiezasPorMarca(t *testing.T) {
	// 15 piezas, 4 of them Toyota: pagination must come from the subset.
	piezas := make([]model.Pieza, 0, 15)
	for i := 0; i < 15; i++ {
		marca := "Renault"
		if i%4 == 0 { // ids 1, 5, 9, 13
			marca = "Toyota"
		}
		piezas = append(piezas, piezaDeOrigen(int64(i+1), "motor",
			model.OrigenVehiculo{Marca: marca, Modelo: "Corolla"}, "100"))
	}

	filtrado := FiltrarPiezas(piezas, FiltrosPieza{Marca: "Toyota"})
	require.Len(t, filtrado, 4)

	pag := RecalcularPaginacion(len(filtrado), 10, 1)
	assert.Equal(t, 4, pag.Total)
	assert.Equal(t, 1, pag.TotalPages)

	// Input order preserved.
	assert.Equal(t, int64(1), filtrado[0].ID)
	assert.Equal(t, int64(13), filtrado[3].ID)
}

func TestSentinelesNoFiltran(t *testing.T) {
	piezas := []model.Pieza{
		piezaDeOrigen(1, "motor", model.OrigenVehiculo{Marca: "Seat"}, "50"),
		piezaDeOrigen(2, "puerta", model.OrigenVehiculo{Marca: "Opel"}, "80"),
	}

	for _, sentinel := range []string{"", "todas", "todos", "Todas", " TODOS "} {
		f := FiltrosPieza{Marca: sentinel, Categoria: sentinel, Modelo: sentinel, Anio: sentinel}
		assert.Len(t, FiltrarPiezas(piezas, f), 2, "sentinel %q must be a no-op", sentinel)
	}
}

func TestCumpleComponeConAND(t *testing.T) {
	p := piezaDeOrigen(1, "motor", model.OrigenVehiculo{Marca: "Toyota", Modelo: "Yaris", AnioFabricacion: 2015}, "120")

	assert.True(t, FiltrosPieza{Marca: "toyota", Categoria: "MOTOR"}.Cumple(p))
	assert.False(t, FiltrosPieza{Marca: "toyota", Categoria: "puerta"}.Cumple(p))
	assert.True(t, FiltrosPieza{Marca: "Toyota", Anio: "2015"}.Cumple(p))
	assert.False(t, FiltrosPieza{Marca: "Toyota", Anio: "2016"}.Cumple(p))
}

func TestBusquedaLibre(t *testing.T) {
	p := piezaDeOrigen(1, "alternador", model.OrigenVehiculo{Marca: "Citroën", Modelo: "C3"}, "60")
	p.RefOEM = "9646321880"
	p.Descripcion = "Alternador Valeo 90A"

	assert.True(t, FiltrosPieza{Busqueda: "valeo"}.Cumple(p))
	assert.True(t, FiltrosPieza{Busqueda: "9646"}.Cumple(p))
	assert.True(t, FiltrosPieza{Busqueda: "citroën"}.Cumple(p))
	assert.False(t, FiltrosPieza{Busqueda: "retrovisor"}.Cumple(p))
}

func TestRangoDePrecio(t *testing.T) {
	p := piezaDeOrigen(1, "faro", model.OrigenVehiculo{}, "75.50")

	min := decimal.RequireFromString("50")
	max := decimal.RequireFromString("75.50")
	assert.True(t, FiltrosPieza{PrecioMin: &min, PrecioMax: &max}.Cumple(p), "bounds are inclusive")

	maxBajo := decimal.RequireFromString("75.49")
	assert.False(t, FiltrosPieza{PrecioMax: &maxBajo}.Cumple(p))
}

func TestRecalcularPaginacionCeil(t *testing.T) {
	casos := []struct {
		total, limit, esperado int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{4, 10, 1},
		{25, 10, 3},
	}
	for _, c := range casos {
		t.Run(fmt.Sprintf("%d_entre_%d", c.total, c.limit), func(t *testing.T) {
			pag := RecalcularPaginacion(c.total, c.limit, 1)
			assert.Equal(t, c.esperado, pag.TotalPages)
			assert.Equal(t, c.total, pag.Total)
		})
	}
}

func TestFiltrarVehiculos(t *testing.T) {
	vehiculos := []model.Vehiculo{
		{ID: 1, Marca: "Ford", Modelo: "Focus", AnioFabricacion: 2012, Estado: model.VehiculoActivo},
		{ID: 2, Marca: "Ford", Modelo: "Fiesta", AnioFabricacion: 2018, Estado: model.VehiculoActivo},
		{ID: 3, Marca: "Audi", Modelo: "A3", AnioFabricacion: 2018, Estado: model.VehiculoDesguazado},
	}

	assert.Len(t, FiltrarVehiculos(vehiculos, FiltrosVehiculo{Marca: "Ford"}), 2)
	assert.Len(t, FiltrarVehiculos(vehiculos, FiltrosVehiculo{AnioDesde: 2015}), 2)
	assert.Len(t, FiltrarVehiculos(vehiculos, FiltrosVehiculo{Marca: "Ford", AnioDesde: 2015}), 1)
	assert.Len(t, FiltrarVehiculos(vehiculos, FiltrosVehiculo{Busqueda: "fie"}), 1)
}
