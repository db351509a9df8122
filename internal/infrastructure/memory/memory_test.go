package memory_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carshop-api/internal/domain"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
	"github.com/jhoicas/carshop-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Integridad del Dataset de demostración y contrato de los repositorios.
// ──────────────────────────────────────────────────────────────────────────────

func TestDefaultDataset_ClienteCanonicoResuelve(t *testing.T) {
	ds := memory.DefaultDataset()
	users := memory.NewUserRepository(ds)
	customers := memory.NewCustomerRepository(ds)

	user, err := users.GetByEmail("customer@carshop.com")
	require.NoError(t, err, "el cliente canónico debe existir en el fixture")
	assert.Equal(t, entity.RoleCustomer, user.Role)

	profile, err := customers.GetByID(user.ProfileID)
	require.NoError(t, err, "el ProfileID del cliente canónico debe resolver")
	assert.Equal(t, "cust-1", profile.ID)
	assert.Len(t, profile.Cars, 2, "cust-1 posee exactamente dos carros")
}

func TestDefaultDataset_PerfilFantasmaNoResuelve(t *testing.T) {
	ds := memory.DefaultDataset()
	users := memory.NewUserRepository(ds)
	customers := memory.NewCustomerRepository(ds)

	ghost, err := users.GetByEmail("ghost@carshop.com")
	require.NoError(t, err)

	_, err = customers.GetByID(ghost.ProfileID)
	assert.True(t, errors.Is(err, domain.ErrNotFound),
		"un ProfileID roto debe ser ErrNotFound, nunca un pánico")
}

func TestUserRepository_EmailDesconocido(t *testing.T) {
	users := memory.NewUserRepository(memory.DefaultDataset())
	_, err := users.GetByEmail("nadie@carshop.com")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestOfferingRepository_OrdenDelFixture(t *testing.T) {
	offerings := memory.NewOfferingRepository(memory.DefaultDataset())

	list, err := offerings.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "offering-1", list[0].ID)
	assert.Equal(t, "Premium Wash", list[0].Name)
	assert.Equal(t, "offering-2", list[1].ID)
	assert.Equal(t, "offering-3", list[2].ID)

	assert.Contains(t, list[0].Prices, entity.CarTypeSUV, "cada offering tiene precio por tipo de carro")
}

func TestCarSink_AceptaYDescarta(t *testing.T) {
	ds := memory.DefaultDataset()
	sink := memory.NewCarSink()

	before := len(ds.Customers[0].Cars)
	err := sink.Save(&entity.Car{ID: "car-x", Make: "Toyota"})
	require.NoError(t, err, "el sumidero siempre acepta")

	assert.EqualValues(t, 1, sink.Saved(), "el sumidero registra la llamada")
	assert.Len(t, ds.Customers[0].Cars, before, "el Dataset no cambia: aceptado pero no almacenado")
}

func TestCarSink_ContadorSeguroBajoConcurrencia(t *testing.T) {
	// El mismo sumidero atiende todas las peticiones del proceso, que llegan
	// en goroutines concurrentes: el contador no puede perder llamadas.
	sink := memory.NewCarSink()

	const goroutines = 8
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				_ = sink.Save(&entity.Car{ID: "car-x", Make: "Toyota"})
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, goroutines*perGoroutine, sink.Saved(),
		"cada Save concurrente debe quedar contado")
}
