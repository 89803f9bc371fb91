//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"rental-storefront/tests/common/authtest"
)

const (
	TestUserID    = "42"
	TestUserEmail = "ana@example.com"
	TestPassword  = "secret123"
	TestProductID = "7"
)

// FakeBackend serves the subset of the rental backend API the storefront calls.
type FakeBackend struct {
	t      *testing.T
	server *httptest.Server
	jwt    *authtest.JWTHelper

	mu           sync.Mutex
	favorites    map[string]bool
	reservations []map[string]any
	failCreate   string
}

func NewFakeBackend(t *testing.T, jwt *authtest.JWTHelper) *FakeBackend {
	f := &FakeBackend{
		t:         t,
		jwt:       jwt,
		favorites: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/public/products", f.products)
	mux.HandleFunc("GET /api/public/categories", f.categories)
	mux.HandleFunc("POST /api/auth/login", f.login)
	mux.HandleFunc("GET /api/favorites/{userID}", f.listFavorites)
	mux.HandleFunc("POST /api/favorites/{userID}/{productID}", f.setFavorite(true))
	mux.HandleFunc("DELETE /api/favorites/{userID}/{productID}", f.setFavorite(false))
	mux.HandleFunc("POST /api/customer/reservation/create", f.createReservation)
	mux.HandleFunc("GET /api/customer/reservation/history/{userID}", f.history)

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeBackend) URL() string {
	return f.server.URL
}

// Reset clears favorites, reservations and injected failures.
func (f *FakeBackend) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites = make(map[string]bool)
	f.reservations = nil
	f.failCreate = ""
}

// FailNextCreate makes reservation creation answer 400 with msg.
func (f *FakeBackend) FailNextCreate(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreate = msg
}

func (f *FakeBackend) IsFavorite(productID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favorites[productID]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func authorized(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ")
}

func (f *FakeBackend) products(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]any{
		{
			"id": 7, "name": "Guitarra Fender CD60s", "description": "Acoustic dreadnought guitar",
			"pricePerDay": 30000, "category": map[string]any{"id": 1, "name": "Cuerdas"},
			"images": []map[string]any{{"url": "/images/cd60s.jpg"}},
		},
		{
			"id": 8, "name": "Teclado Roland FP-30", "description": "Digital stage piano",
			"pricePerDay": 25000, "category": map[string]any{"id": 2, "name": "Teclados"},
		},
	})
}

func (f *FakeBackend) categories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]any{
		{"id": 1, "name": "Cuerdas"},
		{"id": 2, "name": "Teclados"},
	})
}

func (f *FakeBackend) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Solicitud inválida"})
		return
	}
	if body.Email != TestUserEmail || body.Password != TestPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Credenciales inválidas"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"token": f.jwt.GenerateToken(f.t, TestUserID, "CUSTOMER", time.Hour),
		"user": map[string]any{
			"id": 42, "name": "Ana", "surname": "Pérez", "email": TestUserEmail, "role": "CUSTOMER",
		},
	})
}

func (f *FakeBackend) listFavorites(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "No autorizado"})
		return
	}
	f.mu.Lock()
	ids := make([]map[string]any, 0, len(f.favorites))
	for id, on := range f.favorites {
		if on {
			ids = append(ids, map[string]any{"productId": id})
		}
	}
	f.mu.Unlock()
	writeJSON(w, http.StatusOK, ids)
}

func (f *FakeBackend) setFavorite(on bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "No autorizado"})
			return
		}
		f.mu.Lock()
		f.favorites[r.PathValue("productID")] = on
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}
}

func (f *FakeBackend) createReservation(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Solicitud inválida"})
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate != "" {
		msg := f.failCreate
		f.failCreate = ""
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": msg})
		return
	}

	id := 1000 + len(f.reservations) + 1
	body["id"] = id
	body["status"] = "CONFIRMED"
	body["createdAt"] = time.Now().UTC().Format(time.RFC3339)
	f.reservations = append(f.reservations, body)
	writeJSON(w, http.StatusCreated, map[string]any{
		"id": id, "status": "CONFIRMED", "createdAt": body["createdAt"],
	})
}

func (f *FakeBackend) history(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	writeJSON(w, http.StatusOK, f.reservations)
}
