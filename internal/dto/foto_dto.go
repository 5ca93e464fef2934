package dto

import "github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/model"

// SubirFotoRequest accompanies the multipart upload; exactly one owner id
// must be present (checked in the service, not by tags).
type SubirFotoRequest struct {
	IDPieza    *int64 `form:"id_pieza"`
	IDVehiculo *int64 `form:"id_vehiculo"`
}

type FotoListResponse struct {
	Data []model.Foto `json:"data"`
}
