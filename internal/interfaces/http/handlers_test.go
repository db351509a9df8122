package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carshop-api/internal/application/usecase"
	"github.com/jhoicas/carshop-api/internal/domain/entity"
	"github.com/jhoicas/carshop-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/carshop-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: aplicación completa sobre el Dataset de demostración
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app  *fiber.App
	sink *memory.CarSink
	ds   *memory.Dataset
}

func newTestServer() *testServer {
	ds := memory.DefaultDataset()
	sink := memory.NewCarSink()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProfileUC:     usecase.NewProfileUseCase(memory.NewCustomerRepository(ds), memory.NewAppointmentRepository(ds)),
		OfferingUC:    usecase.NewOfferingUseCase(memory.NewOfferingRepository(ds)),
		CarUC:         usecase.NewCarUseCase(sink),
		AppointmentUC: usecase.NewAppointmentUseCase(),
		Resolver:      apphttp.NewHeaderResolver(memory.NewUserRepository(ds), "x-user-email"),
	})
	return &testServer{app: app, sink: sink, ds: ds}
}

func (s *testServer) request(t *testing.T, method, path, email string, payload any) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		req.Header.Set("x-user-email", email)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return raw
}

func decodeErrors(t *testing.T, raw []byte) []map[string]string {
	t.Helper()
	var body struct {
		Errors []map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Errors
}

// ──────────────────────────────────────────────────────────────────────────────
// Access Gate sobre toda la superficie /api
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SinIdentidad_TodoRetorna401(t *testing.T) {
	s := newTestServer()

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/profile"},
		{http.MethodGet, "/api/profile/appointments"},
		{http.MethodGet, "/api/offerings"},
		{http.MethodPost, "/api/profile/cars"},
		{http.MethodPost, "/api/appointments"},
	}
	for _, e := range endpoints {
		resp := s.request(t, e.method, e.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
			"%s %s debe exigir identidad", e.method, e.path)
		resp.Body.Close()
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/profile
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProfile_ClienteCanonico_DevuelvePerfilConSusCarros(t *testing.T) {
	s := newTestServer()
	resp := s.request(t, http.MethodGet, "/api/profile", "customer@carshop.com", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var profile entity.Customer
	require.NoError(t, json.Unmarshal(readBody(t, resp), &profile))
	assert.Equal(t, "cust-1", profile.ID)
	assert.Len(t, profile.Cars, 2, "el perfil incluye los dos carros del fixture")
}

func TestGetProfile_RolNoCliente_Retorna403(t *testing.T) {
	s := newTestServer()

	for _, email := range []string{"employee@carshop.com", "owner@carshop.com"} {
		resp := s.request(t, http.MethodGet, "/api/profile", email, nil)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode,
			"%s no tiene rol CUSTOMER", email)
		resp.Body.Close()
	}
}

func TestGetProfile_PerfilAusente_Retorna404(t *testing.T) {
	s := newTestServer()
	resp := s.request(t, http.MethodGet, "/api/profile", "ghost@carshop.com", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(readBody(t, resp)), "Customer profile not found")
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /api/profile/appointments y GET /api/offerings
// ──────────────────────────────────────────────────────────────────────────────

func TestListAppointments_SinScopingPorIdentidad(t *testing.T) {
	s := newTestServer()
	// Un EMPLOYEE también recibe la colección completa: el mock original no
	// filtra por identidad y ese comportamiento se conserva.
	resp := s.request(t, http.MethodGet, "/api/profile/appointments", "employee@carshop.com", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list []entity.Appointment
	require.NoError(t, json.Unmarshal(readBody(t, resp), &list))
	assert.Len(t, list, len(s.ds.Appointments))
}

func TestListOfferings_TresFixturesEnOrden_CualquierRol(t *testing.T) {
	s := newTestServer()

	for _, email := range []string{"customer@carshop.com", "employee@carshop.com", "owner@carshop.com"} {
		resp := s.request(t, http.MethodGet, "/api/offerings", email, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var list []entity.Offering
		require.NoError(t, json.Unmarshal(readBody(t, resp), &list))
		require.Len(t, list, 3, "el catálogo completo para %s", email)
		assert.Equal(t, "offering-1", list[0].ID)
		assert.Equal(t, "offering-2", list[1].ID)
		assert.Equal(t, "offering-3", list[2].ID)
	}
}

func TestGetsRepetidos_RespuestaByteIdentica(t *testing.T) {
	s := newTestServer()

	for _, path := range []string{"/api/profile", "/api/profile/appointments", "/api/offerings"} {
		first := readBody(t, s.request(t, http.MethodGet, path, "customer@carshop.com", nil))
		second := readBody(t, s.request(t, http.MethodGet, path, "customer@carshop.com", nil))
		assert.Equal(t, first, second, "los fixtures nunca mutan: %s debe ser idempotente", path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/profile/cars
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterCar_PayloadValido_201ConCarTypeNulo(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"make":         "Toyota",
		"model":        "Yaris",
		"year":         2021,
		"color":        "Blue",
		"licensePlate": "MH01AA0001",
	}

	resp := s.request(t, http.MethodPost, "/api/profile/cars", "customer@carshop.com", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.NotEmpty(t, body["id"], "el carro nuevo recibe un id fresco")
	carType, present := body["carType"]
	assert.True(t, present, "carType debe viajar explícito en el JSON")
	assert.Nil(t, carType, "carType es null hasta que algo externo lo clasifique")
	assert.Equal(t, "MH01AA0001", body["licensePlate"], "los campos enviados se devuelven tal cual")

	// El 201 es un acuse: el fixture no cambió.
	assert.EqualValues(t, 1, s.sink.Saved())
	assert.Len(t, s.ds.Customers[0].Cars, 2)
}

func TestRegisterCar_CualquierIdentidadConocida(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"make": "Kia", "model": "Seltos", "year": 2023,
		"color": "Red", "licensePlate": "MH02BB0002",
	}
	// El mock original no restringe el registro a CUSTOMER; un EMPLOYEE pasa.
	resp := s.request(t, http.MethodPost, "/api/profile/cars", "employee@carshop.com", payload)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRegisterCar_ViolacionesSimultaneas_UnErrorPorRegla(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"make": "", "model": "Yaris", "year": 1900,
		"color": "", "licensePlate": "MH01AA0001",
	}

	resp := s.request(t, http.MethodPost, "/api/profile/cars", "customer@carshop.com", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := decodeErrors(t, readBody(t, resp))
	require.Len(t, errs, 3, "una entrada por regla violada")
	assert.Equal(t, "make", errs[0]["field"])
	assert.Equal(t, "year", errs[1]["field"])
	assert.Equal(t, "color", errs[2]["field"])
	assert.EqualValues(t, 0, s.sink.Saved(), "nada llega al sumidero con payload inválido")
}

func TestRegisterCar_IdsUnicosEntreLlamadas(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"make": "Toyota", "model": "Yaris", "year": 2021,
		"color": "Blue", "licensePlate": "MH01AA0001",
	}

	var ids []string
	for i := 0; i < 2; i++ {
		resp := s.request(t, http.MethodPost, "/api/profile/cars", "customer@carshop.com", payload)
		var body map[string]any
		require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
		ids = append(ids, body["id"].(string))
	}
	assert.NotEqual(t, ids[0], ids[1])
}

// ──────────────────────────────────────────────────────────────────────────────
// POST /api/appointments
// ──────────────────────────────────────────────────────────────────────────────

func scheduledAtLocalHour(hour int) string {
	return time.Date(2025, time.December, 1, hour, 0, 0, 0, time.Local).Format(time.RFC3339)
}

func TestBookAppointment_PremiumWashALas11_ConflictoDeHorario(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"carId":         "car-1",
		"offeringId":    "offering-1",
		"scheduledTime": scheduledAtLocalHour(11),
	}

	resp := s.request(t, http.MethodPost, "/api/appointments", "customer@carshop.com", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(readBody(t, resp)), "time slot unavailable")
}

func TestBookAppointment_OtroOfferingALas11_Agenda(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"carId":         "car-1",
		"offeringId":    "offering-2",
		"scheduledTime": scheduledAtLocalHour(11),
	}

	resp := s.request(t, http.MethodPost, "/api/appointments", "customer@carshop.com", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(readBody(t, resp)), "Appointment booked successfully!")
}

func TestBookAppointment_TimestampInvalido_ErrorDeCampo(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"carId":         "car-1",
		"offeringId":    "offering-1",
		"scheduledTime": "next tuesday",
	}

	resp := s.request(t, http.MethodPost, "/api/appointments", "customer@carshop.com", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errs := decodeErrors(t, readBody(t, resp))
	require.Len(t, errs, 1)
	assert.Equal(t, "scheduledTime", errs[0]["field"])
}

func TestBookAppointment_NoPersisteNada(t *testing.T) {
	s := newTestServer()
	payload := map[string]any{
		"carId":         "car-1",
		"offeringId":    "offering-3",
		"scheduledTime": scheduledAtLocalHour(16),
	}

	resp := s.request(t, http.MethodPost, "/api/appointments", "customer@carshop.com", payload)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	list := readBody(t, s.request(t, http.MethodGet, "/api/profile/appointments", "customer@carshop.com", nil))
	var apts []entity.Appointment
	require.NoError(t, json.Unmarshal(list, &apts))
	assert.Len(t, apts, len(s.ds.Appointments), "agendar es un acuse: la colección no crece")
}
