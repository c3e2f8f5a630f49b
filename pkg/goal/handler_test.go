package goal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fintrack/fintrack/internal/eventbus"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, func()) {
	repo := NewStubRepository()
	handler := NewHandler(NewServiceImpl(repo, eventbus.New()))
	return handler, func() { repo.Reset() }
}

func newRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/goals", handler.GetAll).Methods("GET")
	r.HandleFunc("/api/goals", handler.Register).Methods("POST")
	r.HandleFunc("/api/goals/{id}", handler.Delete).Methods("DELETE")
	r.HandleFunc("/api/goals/{id}/contributions", handler.Contribute).Methods("POST")
	return r
}

func createGoal(t *testing.T, router *mux.Router, name string, target int64) GoalDTO {
	body, _ := json.Marshal(GoalDTO{Name: name, Target: decimal.NewFromInt(target)})
	req := httptest.NewRequest(http.MethodPost, "/api/goals", bytes.NewBuffer(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created GoalDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	return created
}

func TestHandler_Contribute(t *testing.T) {
	t.Run("should add a contribution and return the updated goal", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()
		router := newRouter(handler)
		created := createGoal(t, router, "Vacation", 500)

		body := []byte(`{"amount": "100"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/goals/1/contributions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var updated GoalDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, updated.Saved.Equal(decimal.NewFromInt(100)))
	})

	t.Run("should respond not found for an unknown goal", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		body := []byte(`{"amount": "100"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/goals/42/contributions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("should reject a non-positive contribution", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()
		router := newRouter(handler)
		createGoal(t, router, "Vacation", 500)

		body := []byte(`{"amount": "0"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/goals/1/contributions", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	t.Run("should reject a goal without a target", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		body := []byte(`{"name": "Vacation"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/goals", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		newRouter(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
