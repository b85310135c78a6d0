package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"heavylingam-backend/internal/catalog"
	"heavylingam-backend/internal/i18n"
	"heavylingam-backend/internal/service"
)

// CatalogHandler serves the public, read-only browsing surface.
type CatalogHandler struct {
	catalog    service.CatalogService
	translator i18n.Translator
}

func NewCatalogHandler(catalogSvc service.CatalogService, translator i18n.Translator) *CatalogHandler {
	return &CatalogHandler{
		catalog:    catalogSvc,
		translator: translator,
	}
}

// HandleBrowse renders the catalog page data: the visible slice of the
// filtered collection, category summaries and paging hints. Filter state
// arrives as query parameters; malformed numeric bounds are treated as
// absent by the filter engine, never rejected here.
func (h *CatalogHandler) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := catalog.FilterState{
		SearchTerm: q.Get("searchTerm"),
		Wheels:     valueOr(q.Get("wheels"), "any"),
		Owners:     valueOr(q.Get("owners"), "any"),
		YearFrom:   q.Get("yearFrom"),
		YearTo:     q.Get("yearTo"),
		PriceFrom:  q.Get("priceFrom"),
		PriceTo:    q.Get("priceTo"),
		Type:       valueOr(q.Get("type"), "any"),
	}

	category := valueOr(q.Get("category"), "all")

	visibleCount := 0
	if v := q.Get("visibleCount"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			visibleCount = n
		}
	}

	page, err := h.catalog.Browse(r.Context(), category, filters, visibleCount)
	if err != nil {
		writeError(w, err, "Failed to fetch vehicles")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// HandleDetail serves the detail dialog payload for one listing. The image
// query parameter selects the carousel position; anything out of range falls
// back to the first image.
func (h *CatalogHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	imageIndex := 0
	if v := r.URL.Query().Get("image"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			imageIndex = n
		}
	}

	detail, err := h.catalog.Detail(r.Context(), id, imageIndex)
	if err != nil {
		writeError(w, err, "Failed to fetch vehicle")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// HandleTranslations serves the full message table for a locale.
func (h *CatalogHandler) HandleTranslations(w http.ResponseWriter, r *http.Request) {
	locale := mux.Vars(r)["locale"]
	writeJSON(w, http.StatusOK, map[string]any{
		"locale":   locale,
		"locales":  i18n.Locales(),
		"messages": h.translator.Table(locale),
	})
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
