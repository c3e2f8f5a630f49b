package expense

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/fintrack/fintrack/internal/utils"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, func()) {
	repo := NewStubRepository()
	clock := &utils.MockClock{FixedNow: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)}
	handler := NewHandler(NewServiceImpl(repo, eventbus.New(), clock))
	return handler, func() { repo.Reset() }
}

func newRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/expenses", handler.GetAll).Methods("GET")
	r.HandleFunc("/api/expenses", handler.Register).Methods("POST")
	r.HandleFunc("/api/expenses/{id}", handler.Delete).Methods("DELETE")
	return r
}

func TestHandler_Register(t *testing.T) {
	t.Run("should create an expense", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		body, _ := json.Marshal(ExpenseDTO{Amount: decimal.NewFromInt(250), Category: "Food", Date: "2025-03-14", Notes: "lunch"})
		req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var created ExpenseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, "2025-03-14", created.Date)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		body := []byte(`{"amount": "10", "category": "Food", "date": "14.03.2025"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var errResponse struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
		assert.Contains(t, errResponse.Error, "Invalid date format")
		assert.Contains(t, errResponse.Details, "YYYY-MM-DD")
	})

	t.Run("should reject an unknown category", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		body := []byte(`{"amount": "10", "category": "Gambling", "date": "2025-03-14"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetAll(t *testing.T) {
	t.Run("should return an empty array for no expenses", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("should delete and respond with no content", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		req := httptest.NewRequest(http.MethodDelete, "/api/expenses/1", nil)
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("should reject a non-numeric identifier", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		req := httptest.NewRequest(http.MethodDelete, "/api/expenses/abc", nil)
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
