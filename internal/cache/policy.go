package cache

import "time"

// Fallback declares what a service does when a list fetch fails.
type Fallback int

const (
	// FallbackNone propagates the fetch error (piezas, clientes, pedidos).
	FallbackNone Fallback = iota
	// FallbackSnapshot serves the persisted snapshot if still fresh
	// (vehiculos only — intentional asymmetry, kept as declared policy).
	FallbackSnapshot
)

// Policy is the per-resource read-fallback policy. Making the asymmetry
// explicit data keeps it reviewable instead of scattered per-file behavior.
type Policy struct {
	Fallback Fallback
	TTL      time.Duration
}

// SnapshotTTL is how long a persisted snapshot stays servable.
const SnapshotTTL = 5 * time.Minute

// PolicyVehiculos is the only snapshot-backed policy in the system.
func PolicyVehiculos() Policy {
	return Policy{Fallback: FallbackSnapshot, TTL: SnapshotTTL}
}

// PolicyNinguna keeps the default propagate-the-error behavior.
func PolicyNinguna() Policy {
	return Policy{Fallback: FallbackNone}
}
