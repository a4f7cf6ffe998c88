package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"utsavia/client"
	"utsavia/models"
	"utsavia/session"
	"utsavia/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, baseURL string, vendorID string) (*DefaultCatalogService, session.Store) {
	t.Helper()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	if vendorID != "" {
		require.NoError(t, store.Set(session.KeyVendorID, vendorID))
	}
	api := client.New(baseURL, store, zap.NewNop())
	return &DefaultCatalogService{API: api, Store: store}, store
}

func TestAddItemBuildsContractPayload(t *testing.T) {
	var got models.AddItemRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/items/add", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"_id":"i1","name":"Balloon Arch"}`)
	}))
	defer srv.Close()

	svc, _ := newService(t, srv.URL, "v1")

	item, err := svc.AddItem(context.Background(), AddItemInput{
		Name:     "Balloon Arch",
		Category: "Birthday",
		City:     "Delhi",
		Price:    "500",
		ImageURL: "https://img.example/arch.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "i1", item.ID.String())

	require.Len(t, got.Prices, 1)
	assert.Equal(t, "Delhi", got.Prices[0].City)
	assert.Equal(t, 500.0, got.Prices[0].Price)
	assert.Equal(t, "Birthday", got.Category)
	assert.Equal(t, "https://img.example/arch.jpg", got.Image)
	assert.Equal(t, "v1", got.Vendor)
}

func TestAddItemRejectsBadPrice(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	svc, _ := newService(t, srv.URL, "v1")

	for _, price := range []string{"", "abc", "-5", "0"} {
		_, err := svc.AddItem(context.Background(), AddItemInput{Name: "X", Category: "Birthday", City: "Delhi", Price: price})
		assert.True(t, utils.IsValidationError(err), "price %q should be rejected", price)
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestCatalogRequiresVendorID(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	svc, _ := newService(t, srv.URL, "")

	_, err := svc.AddItem(context.Background(), AddItemInput{Name: "X", Category: "Birthday", City: "Delhi", Price: "500"})
	assert.True(t, utils.IsAuthError(err))

	_, err = svc.FetchItems(context.Background())
	assert.True(t, utils.IsAuthError(err))

	err = svc.DeleteItem(context.Background(), "i1")
	assert.True(t, utils.IsAuthError(err))

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestFetchItemsSendsVendorHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/items/fetch", r.URL.Path)
		assert.Equal(t, "v1", r.Header.Get("vendorid"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"_id":"i1","name":"Balloon Arch","category":{"name":"Birthday"},"vendor":"v1"}]`)
	}))
	defer srv.Close()

	svc, _ := newService(t, srv.URL, "v1")

	items, err := svc.FetchItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Balloon Arch", items[0].Name)
	assert.Equal(t, "Birthday", items[0].Category.Name)
}

func TestDeleteItemTargetsItemPath(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message":"Item deleted"}`)
	}))
	defer srv.Close()

	svc, _ := newService(t, srv.URL, "v1")

	require.NoError(t, svc.DeleteItem(context.Background(), "i1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/items/i1", gotPath)
}
