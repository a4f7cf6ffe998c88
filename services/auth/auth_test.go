package auth

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

func newService(t *testing.T, baseURL string) (*DefaultAuthService, session.Store) {
	t.Helper()
	store, err := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	api := client.New(baseURL, store, zap.NewNop())
	return &DefaultAuthService{API: api, Store: store}, store
}

func TestSignUpPersistsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/signup", r.URL.Path)

		var req models.SignUpRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "A", req.Name)
		assert.Equal(t, "a@b.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"token":"t1","vendorId":"v1","message":"Account created successfully"}`)
	}))
	defer srv.Close()

	svc, store := newService(t, srv.URL)

	resp, err := svc.SignUp(context.Background(), models.SignUpRequest{Name: "A", Email: "a@b.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "v1", resp.VendorID.String())

	sess, err := session.Load(store)
	require.NoError(t, err)
	assert.Equal(t, "t1", sess.AccessToken)
	assert.Equal(t, "v1", sess.VendorID)
}

func TestSignInPersistsRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token":"t1","refreshToken":"r1","vendorId":"v1"}`)
	}))
	defer srv.Close()

	svc, store := newService(t, srv.URL)

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "a@b.com", Password: "123456"})
	require.NoError(t, err)

	sess, err := session.Load(store)
	require.NoError(t, err)
	assert.Equal(t, "r1", sess.RefreshToken)
}

func TestSignInHandlesNumericVendorID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"token":"t1","vendorId":42}`)
	}))
	defer srv.Close()

	svc, store := newService(t, srv.URL)

	resp, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "a@b.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "42", resp.VendorID.String())

	vendorID, _, err := store.Get(session.KeyVendorID)
	require.NoError(t, err)
	assert.Equal(t, "42", vendorID)
}

func TestSignUpValidationNeverHitsNetwork(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	svc, _ := newService(t, srv.URL)

	cases := []models.SignUpRequest{
		{Name: "", Email: "a@b.com", Password: "123456"},
		{Name: "A", Email: "not-an-email", Password: "123456"},
		{Name: "A", Email: "a@b.com", Password: "123"},
	}
	for _, req := range cases {
		_, err := svc.SignUp(context.Background(), req)
		assert.True(t, utils.IsValidationError(err), "expected validation error for %+v", req)
	}
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestSignInErrorLeavesStoreUntouched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"message":"Invalid email or password"}`)
	}))
	defer srv.Close()

	svc, store := newService(t, srv.URL)

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "a@b.com", Password: "wrong"})
	var apiErr utils.APIError
	require.ErrorAs(t, err, &apiErr)

	sess, err := session.Load(store)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func TestSignOutClearsSession(t *testing.T) {
	svc, store := newService(t, "http://unused")
	require.NoError(t, session.Save(store, models.Session{AccessToken: "t1", VendorID: "v1"}))

	require.NoError(t, svc.SignOut(context.Background()))

	sess, err := session.Load(store)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}
