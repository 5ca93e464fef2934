package model

// Paginacion is the pagination block every upstream list endpoint returns
// alongside its data array. Total/TotalPages may be absent upstream (the
// `count` flag is optional); Normalizar fills them in from the page itself.
type Paginacion struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Normalizar makes the block internally consistent for a page of n items.
// Missing Page/Limit fall back to 1/n; a missing Total is assumed to be the
// page itself; TotalPages is always re-derived as ceil(Total/Limit).
func (p Paginacion) Normalizar(n int) Paginacion {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		if n > 0 {
			p.Limit = n
		} else {
			p.Limit = 1
		}
	}
	if p.Total < n {
		p.Total = n
	}
	p.TotalPages = (p.Total + p.Limit - 1) / p.Limit
	return p
}
