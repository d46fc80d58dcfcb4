package bootstrap

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"healthcare-admin-portal/config"
	"healthcare-admin-portal/internal/delivery/http/middleware"
	"healthcare-admin-portal/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gatewayCall struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

// fakeGateway records every call and answers with the configured routes.
type fakeGateway struct {
	mu     sync.Mutex
	calls  []gatewayCall
	routes map[string]func(w http.ResponseWriter, body map[string]interface{})
}

func newFakeGateway(t *testing.T) (*fakeGateway, *httptest.Server) {
	gw := &fakeGateway{routes: make(map[string]func(http.ResponseWriter, map[string]interface{}))}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if r.Body != nil {
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &body)
			}
		}

		gw.mu.Lock()
		gw.calls = append(gw.calls, gatewayCall{Method: r.Method, Path: r.URL.EscapedPath(), Body: body})
		route, ok := gw.routes[r.Method+" "+r.URL.EscapedPath()]
		gw.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		route(w, body)
	}))
	t.Cleanup(server.Close)
	return gw, server
}

func (g *fakeGateway) on(method, path string, status int, payload string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.routes[method+" "+path] = func(w http.ResponseWriter, _ map[string]interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}
}

func (g *fakeGateway) recorded() []gatewayCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]gatewayCall(nil), g.calls...)
}

type portal struct {
	server  *httptest.Server
	client  *http.Client
	gateway *fakeGateway
}

func newPortal(t *testing.T) *portal {
	t.Helper()

	gw, gwServer := newFakeGateway(t)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	cfg := &config.Config{
		App:          config.AppConfig{Port: "0", Env: "test"},
		Gateway:      config.GatewayConfig{BaseURL: gwServer.URL, Timeout: 2 * time.Second},
		PageState:    config.PageStateConfig{TTL: time.Minute},
		Appointments: config.AppointmentsConfig{DefaultDoctorID: "1"},
		Billing:      config.BillingConfig{CurrencySymbol: "₹"},
		Log:          config.LogConfig{Level: "error"},
		Metrics:      config.MetricsConfig{Namespace: "portal"},
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	handler, err := NewHandler(cfg, redisClient, log, metrics.NewCollector(cfg.Metrics.Namespace))
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &portal{
		server:  server,
		client:  &http.Client{Jar: jar, Timeout: 5 * time.Second},
		gateway: gw,
	}
}

func (p *portal) get(t *testing.T, path string) (int, string) {
	t.Helper()
	resp, err := p.client.Get(p.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func (p *portal) post(t *testing.T, path string, form url.Values) (int, string) {
	t.Helper()
	resp, err := p.client.PostForm(p.server.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPortal_SetsSessionCookie(t *testing.T) {
	p := newPortal(t)

	resp, err := p.client.Get(p.server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	var sid *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			sid = c
		}
	}
	require.NotNil(t, sid)
	assert.True(t, sid.HttpOnly)
}

func TestPortal_RegisterPatient(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodPost, "/api/users", http.StatusCreated, `{"id":7,"name":"Ann","email":"ann@x.io","role":"PATIENT"}`)

	status, body := p.post(t, "/register", url.Values{
		"name":  {"Ann"},
		"email": {"ann@x.io"},
		"role":  {"PATIENT"},
	})

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Registration successful!")

	calls := p.gateway.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "/api/users", calls[0].Path)
	assert.Equal(t, map[string]interface{}{"name": "Ann", "email": "ann@x.io", "role": "PATIENT"}, calls[0].Body)
}

func TestPortal_RegisterDoctorCreatesProfile(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodPost, "/api/users", http.StatusCreated, `{"id":"u-1","name":"Dr Bo","email":"bo@x.io","role":"DOCTOR"}`)
	p.gateway.on(http.MethodPost, "/api/doctors", http.StatusCreated, `{"id":"d-1","name":"Dr Bo","specialization":"Neurology","available":true}`)

	status, body := p.post(t, "/register", url.Values{
		"name":           {"Dr Bo"},
		"email":          {"bo@x.io"},
		"role":           {"DOCTOR"},
		"specialization": {"Neurology"},
	})

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Registration successful!")

	calls := p.gateway.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/users", calls[0].Path)
	assert.Equal(t, "/api/doctors", calls[1].Path)
	assert.Equal(t, "Dr Bo", calls[1].Body["name"])
	assert.Equal(t, "Neurology", calls[1].Body["specialization"])
	assert.Equal(t, true, calls[1].Body["available"])
}

func TestPortal_RegisterDoctorProfileFailureCanBeRetried(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodPost, "/api/users", http.StatusCreated, `{"id":"u-1","name":"Dr Bo","email":"bo@x.io","role":"DOCTOR"}`)
	p.gateway.on(http.MethodPost, "/api/doctors", http.StatusInternalServerError, ``)

	status, body := p.post(t, "/register", url.Values{
		"name":           {"Dr Bo"},
		"email":          {"bo@x.io"},
		"role":           {"DOCTOR"},
		"specialization": {"Neurology"},
	})
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body, "Retry doctor profile")

	p.gateway.on(http.MethodPost, "/api/doctors", http.StatusCreated, `{"id":"d-1","name":"Dr Bo","specialization":"Neurology","available":true}`)
	status, body = p.post(t, "/register/doctor-profile", url.Values{})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Registration successful!")

	calls := p.gateway.recorded()
	require.Len(t, calls, 3)
	assert.Equal(t, "/api/doctors", calls[2].Path)
}

func TestPortal_RegisterValidationMakesNoRequest(t *testing.T) {
	p := newPortal(t)

	status, body := p.post(t, "/register", url.Values{
		"name":  {"Dr Bo"},
		"email": {"bo@x.io"},
		"role":  {"DOCTOR"},
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "field-error")
	assert.Empty(t, p.gateway.recorded())
}

func TestPortal_DoctorsFailure(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodGet, "/api/doctors", http.StatusInternalServerError, ``)

	status, body := p.get(t, "/doctors")

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body, "Failed to fetch doctors")
}

func TestPortal_DoctorsFilterFragment(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodGet, "/api/doctors", http.StatusOK,
		`[{"id":1,"name":"Alice","specialization":"Cardiology","available":true},{"id":2,"name":"Bob","specialization":"Neurology","available":false}]`)

	status, _ := p.get(t, "/doctors")
	require.Equal(t, http.StatusOK, status)

	req, err := http.NewRequest(http.MethodGet, p.server.URL+"/doctors/filter?q=neuro", nil)
	require.NoError(t, err)
	req.Header.Set("X-Requested-With", "fetch")
	resp, err := p.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Bob")
	assert.NotContains(t, body, "Alice")
	assert.NotContains(t, body, "<html")
	// Filtering reuses the stored directory.
	assert.Len(t, p.gateway.recorded(), 1)
}

func TestPortal_AppointmentsBookAndRefetch(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodGet, "/api/appointments/doctor/1", http.StatusOK, `[]`)
	p.gateway.on(http.MethodPost, "/api/appointments", http.StatusCreated,
		`{"id":9,"patientId":"P1","doctorId":"D1","appointmentDate":"2024-05-01T10:30","status":"Scheduled"}`)
	p.gateway.on(http.MethodGet, "/api/appointments", http.StatusOK,
		`[{"id":9,"patientId":"P1","doctorId":"D1","appointmentDate":"2024-05-01T10:30","status":"Scheduled"}]`)

	status, _ := p.get(t, "/appointments")
	require.Equal(t, http.StatusOK, status)

	status, body := p.post(t, "/appointments", url.Values{
		"patientId":       {"P1"},
		"doctorId":        {"D1"},
		"appointmentDate": {"2024-05-01T10:30"},
	})

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Appointment scheduled successfully!")
	assert.Contains(t, body, "May 1, 2024, 10:30 AM")
	assert.NotContains(t, body, `value="P1"`)

	calls := p.gateway.recorded()
	require.Len(t, calls, 3)
	assert.Equal(t, "/api/appointments/doctor/1", calls[0].Path)
	assert.Equal(t, http.MethodPost, calls[1].Method)
	assert.Equal(t, map[string]interface{}{
		"patientId":       "P1",
		"doctorId":        "D1",
		"appointmentDate": "2024-05-01T10:30",
		"status":          "Scheduled",
	}, calls[1].Body)
	assert.Equal(t, http.MethodGet, calls[2].Method)
	assert.Equal(t, "/api/appointments", calls[2].Path)
}

func TestPortal_BillingBlankPatientID(t *testing.T) {
	p := newPortal(t)

	status, body := p.post(t, "/billing", url.Values{"patientId": {"   "}})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Please enter a patient ID")
	assert.Empty(t, p.gateway.recorded())
}

func TestPortal_BillingEmptyAndResults(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodGet, "/api/billing/patient/P1", http.StatusOK, `[]`)
	p.gateway.on(http.MethodGet, "/api/billing/patient/P2", http.StatusOK,
		`[{"id":"INV-1","amount":1500,"status":"PAID"},{"id":"INV-2","amount":99.5,"status":"UNPAID"}]`)

	status, body := p.post(t, "/billing", url.Values{"patientId": {"P1"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No invoices found for patient P1")

	status, body = p.post(t, "/billing", url.Values{"patientId": {"P2"}})
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Invoice #INV-1")
	assert.Contains(t, body, "₹1,500")
	assert.Contains(t, body, "₹99.5")
	assert.NotContains(t, body, "No invoices found")
}

func TestPortal_BillingNetworkFailure(t *testing.T) {
	p := newPortal(t)
	p.gateway.routes["GET /api/billing/patient/P1"] = func(w http.ResponseWriter, _ map[string]interface{}) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			return
		}
		conn, _, err := hj.Hijack()
		if err == nil {
			conn.Close()
		}
	}

	status, body := p.post(t, "/billing", url.Values{"patientId": {"P1"}})

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, body, "Connection error. Please check your network.")
}

func TestPortal_UnknownRoutes(t *testing.T) {
	p := newPortal(t)

	status, body := p.get(t, "/login")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "Page not found")

	resp, err := p.client.Post(p.server.URL+"/doctors", "application/x-www-form-urlencoded", strings.NewReader(""))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestPortal_HealthAndMetrics(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodGet, "/api/doctors", http.StatusOK, `[]`)

	status, body := p.get(t, "/health")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"redis":"up"`)

	p.get(t, "/doctors")

	status, body = p.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `portal_gateway_requests_total{operation="list_doctors",outcome="success"} 1`)
	assert.Contains(t, body, `route="/doctors"`)
}

func TestPortal_AppointmentsValidationMakesNoRequest(t *testing.T) {
	p := newPortal(t)
	p.gateway.on(http.MethodGet, "/api/appointments/doctor/1", http.StatusOK, `[]`)

	status, _ := p.get(t, "/appointments")
	require.Equal(t, http.StatusOK, status)

	status, body := p.post(t, "/appointments", url.Values{
		"patientId":       {""},
		"doctorId":        {"  "},
		"appointmentDate": {""},
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Patient is required")
	assert.Contains(t, body, "Doctor is required")
	assert.Contains(t, body, "Appointment date is required")

	status, body = p.post(t, "/appointments", url.Values{
		"patientId":       {"P1"},
		"doctorId":        {"D1"},
		"appointmentDate": {"tomorrow"},
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body, "Appointment date must be a valid date and time")
	assert.Contains(t, body, `value="P1"`)

	for _, call := range p.gateway.recorded() {
		assert.NotEqual(t, http.MethodPost, call.Method, "rejected bookings must not reach the gateway")
	}
	assert.Len(t, p.gateway.recorded(), 1)
}
