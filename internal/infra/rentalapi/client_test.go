//go:build unit

package rentalapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentacar/internal/infra"
	"rentacar/internal/infra/rentalapi"
	"rentacar/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *rentalapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rentalapi.New(config.UpstreamConfig{RentalBaseURL: srv.URL, Timeout: time.Second})
}

func TestCreateReservation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/reservations", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Toyota Corolla", payload["vehicle"])
		assert.Equal(t, "42", payload["userId"])
		assert.NotContains(t, payload, "id")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"17","vehicle":"Toyota Corolla","userId":"42"}`))
	})

	created, err := client.CreateReservation(context.Background(), rentalapi.Reservation{
		CreatedAt:  "2025-06-01T10:00:00Z",
		Vehicle:    "Toyota Corolla",
		Year:       2020,
		Color:      "Blue",
		DailyRate:  50,
		Pickup:     "2025-06-02T10:00:00Z",
		Return:     "2025-06-04T10:00:00Z",
		CardNumber: "4111111111111111",
		UserID:     "42",
	})
	require.NoError(t, err)
	assert.Equal(t, "17", created.ID)
}

func TestListReservations(t *testing.T) {
	t.Run("passes userId and returns records", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "42", r.URL.Query().Get("userId"))
			w.Write([]byte(`[{"id":"1","userId":"42"},{"id":"2","userId":"421"}]`))
		})

		records, err := client.ListReservations(context.Background(), "42")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("404 means empty list", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		records, err := client.ListReservations(context.Background(), "42")
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestDeleteReservation(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/reservations/17", r.URL.Path)
		w.Write([]byte(`{"id":"17"}`))
	})

	require.NoError(t, client.DeleteReservation(context.Background(), "17"))
}

func TestFindUser(t *testing.T) {
	t.Run("first matching record wins", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))
			assert.Equal(t, "secret123", r.URL.Query().Get("password"))
			w.Write([]byte(`[{"id":"9","name":"Jane Doe","email":"jane@example.com"}]`))
		})

		u, err := client.FindUser(context.Background(), "jane@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "9", u.ID)
		assert.Equal(t, "Jane Doe", u.Name)
	})

	t.Run("split name record assembled", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":"9","firstName":"Jane","lastName":"Doe","email":"jane@example.com"}]`))
		})

		u, err := client.FindUser(context.Background(), "jane@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", u.Name)
	})

	t.Run("empty array rejects credentials", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		})

		_, err := client.FindUser(context.Background(), "jane@example.com", "wrong")
		assert.True(t, infra.IsKind(err, infra.KindUnauthenticated))
	})

	t.Run("not found sentinel rejects credentials", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"Not found"`))
		})

		_, err := client.FindUser(context.Background(), "jane@example.com", "wrong")
		assert.True(t, infra.IsKind(err, infra.KindUnauthenticated))
	})

	t.Run("404 rejects credentials", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.FindUser(context.Background(), "jane@example.com", "wrong")
		assert.True(t, infra.IsKind(err, infra.KindUnauthenticated))
	})
}

func TestCreateUser(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"31","firstName":"Jane","lastName":"Doe","email":"jane@example.com"}`))
	})

	u, err := client.CreateUser(context.Background(), rentalapi.NewAccount{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "31", u.ID)
	assert.Equal(t, "Jane Doe", u.Name)
}
