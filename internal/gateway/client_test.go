package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-key", 5*time.Second, zerolog.Nop())
}

func TestListSendsAuthAndPagination(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/entities/beds", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))
		assert.Equal(t, "Occupied", r.URL.Query().Get("status"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":  []map[string]string{{"id": "b1"}, {"id": "b2"}},
			"total": 12,
		})
	})

	filter := map[string][]string{"status": {"Occupied"}}
	res, err := c.List(context.Background(), "beds", filter, 20, 40)
	require.NoError(t, err)
	assert.Equal(t, 12, res.Total)
	assert.Len(t, res.Items, 2)
}

func TestGetNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Get(context.Background(), "patients", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReturnsPersistedRecord(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in["id"] = "srv-1"
		in["created_date"] = "2025-06-15"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	})

	raw, err := c.Create(context.Background(), "patients", map[string]string{"mrn": "MRN-1"})
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "srv-1", out["id"])
	assert.Equal(t, "MRN-1", out["mrn"])
}

func TestServerErrorSurfacesStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Update(context.Background(), "bills", "b1", map[string]string{})
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
}

func TestDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/entities/beds/b9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Delete(context.Background(), "beds", "b9"))
}

func TestUpload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "cbc-report.pdf", hdr.Filename)
		json.NewEncoder(w).Encode(UploadResult{
			FileURL:  "https://blobs.example.com/cbc-report.pdf",
			FileName: "cbc-report.pdf",
		})
	})

	res, err := c.Upload(context.Background(), "cbc-report.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "cbc-report.pdf", res.FileName)
	assert.Contains(t, res.FileURL, "blobs.example.com")
}
