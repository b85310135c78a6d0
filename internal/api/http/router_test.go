package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"heavylingam-backend/internal/cache"
	"heavylingam-backend/internal/config"
	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/i18n"
	"heavylingam-backend/internal/security"
	"heavylingam-backend/internal/service"
	"heavylingam-backend/internal/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router *mux.Router
	store  store.Store
	hub    *cache.Hub
	tokens security.TokenManager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.NewMemoryStore()
	hub := cache.NewHub(st, "listings", nil)
	hub.Start(context.Background())
	t.Cleanup(hub.Stop)

	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	catalogSvc := service.NewCatalogService(hub)
	adminSvc := service.NewAdminService(st, hub, "listings")
	authSvc := service.NewAuthService([]config.AdminAccount{
		{Email: "admin@heavylingam.example", PasswordHash: string(hash)},
	}, tokens)
	intake := service.NewImageIntake(config.UploadConfig{
		MaxFileSizeMB: 1,
		AllowedTypes:  []string{"image/png", "image/jpeg"},
	})

	router := NewRouter(
		config.HTTPConfig{},
		tokens,
		NewCatalogHandler(catalogSvc, i18n.New()),
		NewAdminHandler(adminSvc, intake),
		NewAuthHandler(authSvc),
		NewStreamHandler(hub),
	)

	return &fixture{router: router, store: st, hub: hub, tokens: tokens}
}

func (f *fixture) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *fixture) sessionToken(t *testing.T) string {
	t.Helper()
	rr := f.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{
		Email:    "admin@heavylingam.example",
		Password: "open sesame",
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var resp loginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Token
}

func (f *fixture) seed(t *testing.T, listings ...domain.Listing) {
	t.Helper()
	for _, l := range listings {
		_, err := f.store.Append(context.Background(), "listings", l)
		require.NoError(t, err)
	}
}

func TestBrowseEndpoint(t *testing.T) {
	f := newFixture(t)
	f.seed(t,
		domain.Listing{Name: "Tipper", Category: domain.CategoryTrucks, Wheels: 6, Year: 2018, Price: 500000, Type: domain.ListingTypeSale, CreatedAt: 2},
		domain.Listing{Name: "Mobile Crane", Category: domain.CategoryCranes, Wheels: 8, Year: 2020, Price: 900000, Type: domain.ListingTypeRent, CreatedAt: 1},
	)

	t.Run("Unfiltered", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/api/v1/listings", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var page service.BrowsePage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
		assert.Equal(t, 2, page.TotalFiltered)
		assert.Equal(t, 2, page.AllCount)
		assert.False(t, page.ClearVisible)
		assert.Equal(t, "Tipper", page.Listings[0].Name, "newest first")
	})

	t.Run("Wheel filter narrows by exact string match", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/api/v1/listings?wheels=6", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var page service.BrowsePage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
		require.Len(t, page.Listings, 1)
		assert.Equal(t, "Tipper", page.Listings[0].Name)
		assert.True(t, page.ClearVisible)
	})

	t.Run("Category filter", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/api/v1/listings?category=cranes", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var page service.BrowsePage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
		require.Len(t, page.Listings, 1)
		assert.Equal(t, "Mobile Crane", page.Listings[0].Name)
	})

	t.Run("Malformed bound is ignored", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/api/v1/listings?yearFrom=banana", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var page service.BrowsePage
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
		assert.Equal(t, 2, page.TotalFiltered)
	})
}

func TestDetailEndpoint(t *testing.T) {
	f := newFixture(t)
	id, err := f.store.Append(context.Background(), "listings", domain.Listing{Name: "Dozer"})
	require.NoError(t, err)

	t.Run("Placeholder for empty image sequence", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/api/v1/listings/"+id, "", nil)
		require.Equal(t, http.StatusOK, rr.Code)

		var detail service.ListingDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &detail))
		assert.Equal(t, []string{service.PlaceholderImage}, detail.Images)
		assert.False(t, detail.CarouselEnabled)
	})

	t.Run("Unknown id is 404", func(t *testing.T) {
		rr := f.do(t, http.MethodGet, "/api/v1/listings/ghost", "", nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTranslationsEndpoint(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/v1/i18n/TA", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Locale   string            `json:"locale"`
		Messages map[string]string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "TA", resp.Locale)
	assert.Equal(t, "வகைகள்", resp.Messages["categories.title"])
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodGet, "/api/v1/admin/listings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = f.do(t, http.MethodGet, "/api/v1/admin/listings", "bogus-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminCRUDFlow(t *testing.T) {
	f := newFixture(t)
	token := f.sessionToken(t)

	rr := f.do(t, http.MethodPost, "/api/v1/admin/listings", token, domain.Listing{
		Name:     "Grader",
		Category: domain.CategoryLoaders,
		Type:     domain.ListingTypeSale,
		Price:    650000,
		Contact:  "+91 9876543210",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "Listing added successfully!", created.Message)
	require.NotEmpty(t, created.ID)

	rr = f.do(t, http.MethodGet, "/api/v1/admin/listings", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var overview service.AdminOverview
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &overview))
	assert.Equal(t, 1, overview.Total)
	assert.Equal(t, 1, overview.ForSale)

	// Full overwrite: the update draft omits the contact, which drops it.
	rr = f.do(t, http.MethodPut, "/api/v1/admin/listings/"+created.ID, token, domain.Listing{
		Name:     "Motor Grader",
		Category: domain.CategoryLoaders,
		Type:     domain.ListingTypeSale,
		Price:    600000,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	listings, err := f.hub.Listings()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Motor Grader", listings[0].Name)
	assert.Empty(t, listings[0].Contact)

	rr = f.do(t, http.MethodDelete, "/api/v1/admin/listings/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var deleted messageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &deleted))
	assert.Equal(t, "Listing deleted successfully!", deleted.Message)

	listings, err = f.hub.Listings()
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestAdminDeleteAbsentID(t *testing.T) {
	f := newFixture(t)
	token := f.sessionToken(t)

	rr := f.do(t, http.MethodDelete, "/api/v1/admin/listings/never-existed", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code, "deleting an absent id must not fail the console")
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	rr := f.do(t, http.MethodPost, "/api/v1/auth/login", "", loginRequest{
		Email:    "admin@heavylingam.example",
		Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "Failed to login")
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rr := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, fmt.Sprintf("{%q:%q}\n", "status", "ok"), rr.Body.String())
}
