package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("connection refused")

func cbDePrueba() *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      20 * time.Millisecond,
	})
}

func TestCircuitBreakerAbreTrasFallosConsecutivos(t *testing.T) {
	cb := cbDePrueba()

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errBackend })
		assert.ErrorIs(t, err, errBackend)
	}
	assert.Equal(t, CBOpen, cb.State())

	// Open: the call is rejected without running fn.
	ejecutado := false
	err := cb.Execute(func() error { ejecutado = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, ejecutado)
}

func TestCircuitBreakerSeRecuperaTrasLaVentana(t *testing.T) {
	cb := cbDePrueba()
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errBackend })
	}
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	// Two successful probes close the circuit again.
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerSondaFallidaReabre(t *testing.T) {
	cb := cbDePrueba()
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errBackend })
	}
	time.Sleep(25 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	err := cb.Execute(func() error { return errBackend })
	assert.ErrorIs(t, err, errBackend)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreakerExitoReiniciaElContador(t *testing.T) {
	cb := cbDePrueba()

	// Two failures, one success, two more failures: never reaches the
	// threshold of three consecutive ones.
	_ = cb.Execute(func() error { return errBackend })
	_ = cb.Execute(func() error { return errBackend })
	require.NoError(t, cb.Execute(func() error { return nil }))
	_ = cb.Execute(func() error { return errBackend })
	_ = cb.Execute(func() error { return errBackend })

	assert.Equal(t, CBClosed, cb.State())
}
