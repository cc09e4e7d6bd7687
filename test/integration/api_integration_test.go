package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chroma-store/internal/handler"
	"chroma-store/internal/model"
	"chroma-store/internal/repository"
	"chroma-store/internal/router"
	"chroma-store/internal/service"
	"chroma-store/internal/token"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImageStore stands in for S3 in API tests.
type stubImageStore struct {
	url string
	err error
}

func (s *stubImageStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

// newTestServer wires the full stack against the test database.
func newTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(testDB.Pool, logger)
	orderRepo := repository.NewOrderRepository(testDB.Pool, logger)
	adminRepo := repository.NewAdminRepository(testDB.Pool, logger)

	maker, err := token.NewJWTMaker("integration-test-secret", time.Hour)
	require.NoError(t, err)

	catalogService := service.NewCatalogService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)
	authService := service.NewAuthService(adminRepo, maker, logger)

	images := &stubImageStore{url: "https://images.s3.us-east-1.amazonaws.com/products/abc.png"}

	return router.New(
		handler.NewProductHandler(catalogService, logger),
		handler.NewOrderHandler(orderService, logger),
		handler.NewAuthHandler(authService, logger),
		handler.NewUploadHandler(images, logger),
		logger,
	)
}

func doJSON(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestAPI_ProductLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	srv := newTestServer(t, testDB)
	CleanupDB(t, testDB.Pool)

	// Create a product with a nested variant tree.
	resp := doJSON(t, srv, http.MethodPost, "/upload",
		`{"title":"Shirt","price":20,"colors":[{"color":"red","tones":[{"tone":"light","shade":"url1"}]}]}`)
	require.Equal(t, http.StatusOK, resp.Code)

	// List returns it unchanged, with an assigned id.
	resp = doJSON(t, srv, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.NotEmpty(t, products[0].ID)
	assert.Equal(t, "Shirt", products[0].Title)
	require.Len(t, products[0].Colors, 1)
	require.Len(t, products[0].Colors[0].Tones, 1)
	assert.Equal(t, "light", products[0].Colors[0].Tones[0].Tone)
	assert.Equal(t, "url1", products[0].Colors[0].Tones[0].Shade)

	// Delete it, then the catalogue is empty again.
	resp = doJSON(t, srv, http.MethodDelete, "/products/"+products[0].ID.String(), "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"message":"Product deleted successfully"}`, resp.Body.String())

	resp = doJSON(t, srv, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	// Deleting again is a 404.
	resp = doJSON(t, srv, http.MethodDelete, "/products/"+products[0].ID.String(), "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestAPI_OrderSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	srv := newTestServer(t, testDB)
	CleanupDB(t, testDB.Pool)

	// Seed a product and capture its id.
	resp := doJSON(t, srv, http.MethodPost, "/upload", `{"title":"Shirt","price":20}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, srv, http.MethodGet, "/products", "")
	var products []model.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	productID := products[0].ID.String()

	// Place an order whose line item snapshots the product.
	resp = doJSON(t, srv, http.MethodPost, "/place-order",
		`{"name":"Jo","email":"jo@x.com","order":[{"id":"`+productID+`","title":"Shirt","price":20,"color":"red","tone":"light"}]}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, srv, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, resp.Code)
	before := resp.Body.String()

	var orders []model.Order
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, productID, orders[0].Items[0].ProductID)

	// Delete the referenced product from the catalogue.
	resp = doJSON(t, srv, http.MethodDelete, "/products/"+productID, "")
	require.Equal(t, http.StatusOK, resp.Code)

	// The order listing is byte-for-byte unchanged.
	resp = doJSON(t, srv, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, before, resp.Body.String())
}

func TestAPI_PermissiveDocuments(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	srv := newTestServer(t, testDB)
	CleanupDB(t, testDB.Pool)

	// A product without a title is stored with the absent fields empty.
	resp := doJSON(t, srv, http.MethodPost, "/upload", `{"description":"no title"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, srv, http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var products []model.Product
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Empty(t, products[0].Title)
	assert.Equal(t, "no title", products[0].Description)

	// An order with an empty item list is stored as-is.
	resp = doJSON(t, srv, http.MethodPost, "/place-order", `{"name":"Jo","order":[]}`)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, srv, http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var orders []model.Order
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Jo", orders[0].Name)
	assert.Empty(t, orders[0].Items)
}

func TestAPI_AdminRegisterAndLogin(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	srv := newTestServer(t, testDB)
	CleanupDB(t, testDB.Pool)

	// Register.
	resp := doJSON(t, srv, http.MethodPost, "/register", `{"email":"a@x.com","password":"p1"}`)
	require.Equal(t, http.StatusCreated, resp.Code)

	// Same email again, different password: rejected.
	resp = doJSON(t, srv, http.MethodPost, "/register", `{"email":"a@x.com","password":"p2"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Login with the original password succeeds and carries a token.
	resp = doJSON(t, srv, http.MethodPost, "/admin/login", `{"email":"a@x.com","password":"p1"}`)
	require.Equal(t, http.StatusOK, resp.Code)

	var login handler.LoginResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)

	// Wrong password and unknown email are both 401.
	resp = doJSON(t, srv, http.MethodPost, "/admin/login", `{"email":"a@x.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, srv, http.MethodPost, "/admin/login", `{"email":"b@x.com","password":"p1"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAPI_ImageUpload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	srv := newTestServer(t, testDB)

	t.Run("multipart file round-trip", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("image", "swatch.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload-product-image", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"imageUrl":"https://images.s3.us-east-1.amazonaws.com/products/abc.png"}`,
			w.Body.String())
	})

	t.Run("missing file", func(t *testing.T) {
		resp := doJSON(t, srv, http.MethodPost, "/upload-image", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
