package datasource

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func locationJSON(id int, city, district string) map[string]any {
	return map[string]any{
		"merkezId":           float64(id),
		"il":                 city,
		"ilce":               district,
		"ilPlaka":            float64(6),
		"yukseklik":          float64(891),
		"boylam":             32.8597,
		"enlem":              39.9334,
		"gunlukTahminIstNo":  float64(90601),
		"saatlikTahminIstNo": float64(17130),
		"sondurumIstNo":      float64(17130),
	}
}

func observationJSON() map[string]any {
	return map[string]any{
		"aktuelBasinc":            912.4,
		"denizeIndirgenmisBasinc": 1019.1,
		"denizSicaklik":           float64(-9999),
		"hadiseKodu":              "PB",
		"kapalilik":               float64(4),
		"karYukseklik":            float64(-9999),
		"nem":                     float64(61),
		"ruzgarHiz":               7.2,
		"ruzgarYon":               float64(240),
		"sicaklik":                12.6,
		"yagis00Now":              float64(0),
		"yagis10Dk":               float64(-99),
		"yagis1Saat":              float64(0),
		"yagis6Saat":              float64(0),
		"yagis12Saat":             float64(0),
		"yagis24Saat":             0.4,
		"veriZamani":              "2025-03-01T09:00:00.000Z",
		"istNo":                   float64(17130),
	}
}

func dailyJSON() map[string]any {
	obj := map[string]any{"istNo": float64(90601)}
	codes := []string{"A", "PB", "KYK", "YKY", "SIS"}
	for day := 1; day <= 5; day++ {
		obj[fmt.Sprintf("hadiseGun%d", day)] = codes[day-1]
		obj[fmt.Sprintf("enDusukGun%d", day)] = float64(day)
		obj[fmt.Sprintf("enYuksekGun%d", day)] = float64(10 + day)
		obj[fmt.Sprintf("enDusukNemGun%d", day)] = float64(30 + day)
		obj[fmt.Sprintf("enYuksekNemGun%d", day)] = float64(80 + day)
		obj[fmt.Sprintf("ruzgarHizGun%d", day)] = float64(5 * day)
		obj[fmt.Sprintf("ruzgarYonGun%d", day)] = float64(45 * day)
		obj[fmt.Sprintf("tarihGun%d", day)] = fmt.Sprintf("2025-03-0%dT00:00:00.000Z", day)
	}
	return obj
}

func hourlySlotJSON(hour int) map[string]any {
	return map[string]any{
		"tarih":              fmt.Sprintf("2025-03-01T%02d:00:00.000Z", hour),
		"hadise":             "Y",
		"sicaklik":           float64(8),
		"hissedilenSicaklik": float64(6),
		"nem":                float64(75),
		"ruzgarYonu":         float64(200),
		"ruzgarHizi":         float64(12),
		"maksimumRuzgarHizi": float64(25),
	}
}

func hourlyJSON(slots int) map[string]any {
	tahmin := make([]any, 0, slots)
	for i := 0; i < slots; i++ {
		tahmin = append(tahmin, hourlySlotJSON(3*i))
	}
	return map[string]any{
		"baslangicZamani": "2025-03-01T00:00:00.000Z",
		"istNo":           float64(17130),
		"merkez":          "ANKARA",
		"tahmin":          tahmin,
	}
}

// without returns a shallow copy of obj with key removed.
func without(obj map[string]any, key string) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		if k != key {
			out[k] = v
		}
	}
	return out
}

func with(obj map[string]any, key string, value any) map[string]any {
	out := without(obj, key)
	out[key] = value
	return out
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

// fakeMGM serves canned bodies per path and records the requests it received.
type fakeMGM struct {
	t        *testing.T
	mu       sync.Mutex
	bodies   map[string][]byte
	statuses map[string]int
	requests []*http.Request
}

func newFakeMGM(t *testing.T) (*fakeMGM, *httptest.Server) {
	f := &fakeMGM{
		t:        t,
		bodies:   make(map[string][]byte),
		statuses: make(map[string]int),
	}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeMGM) respond(path string, v any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if raw, ok := v.([]byte); ok {
		f.bodies[path] = raw
		return
	}
	f.bodies[path] = mustJSON(f.t, v)
}

func (f *fakeMGM) status(path string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses[path] = code
}

func (f *fakeMGM) lastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests)
	return f.requests[len(f.requests)-1]
}

func (f *fakeMGM) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeMGM) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	body, ok := f.bodies[r.URL.Path]
	code := f.statuses[r.URL.Path]
	f.mu.Unlock()

	if code == 0 {
		code = http.StatusOK
	}
	if !ok {
		code = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(body)
}

func newTestClient(srv *httptest.Server, opts ...Option) *Client {
	return NewClient(append([]Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client())}, opts...)...)
}
