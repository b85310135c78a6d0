package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"heavylingam-backend/internal/domain"
	"heavylingam-backend/internal/service"
)

// AdminHandler serves the session-gated CRUD console. Each operation yields
// exactly one transient message, success or error, and a failed write leaves
// the client's dialog state untouched so the user can retry manually.
type AdminHandler struct {
	admin  service.AdminService
	images *service.ImageIntake
}

func NewAdminHandler(adminSvc service.AdminService, images *service.ImageIntake) *AdminHandler {
	return &AdminHandler{
		admin:  adminSvc,
		images: images,
	}
}

// HandleOverview returns every listing plus the dashboard statistics.
func (h *AdminHandler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.admin.Overview(r.Context())
	if err != nil {
		writeError(w, err, "Failed to fetch listings")
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// HandleCreate appends a new listing. The draft arrives wholesale; the only
// validation is what the form's native input constraints already enforced.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var draft domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Failed to save listing: malformed request body"})
		return
	}

	id, err := h.admin.Create(r.Context(), draft)
	if err != nil {
		writeError(w, err, "Failed to save listing")
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		messageResponse
		ID string `json:"id"`
	}{messageResponse{Message: "Listing added successfully!"}, id})
}

// HandleUpdate overwrites the record at id with the draft. Fields omitted
// from the draft are lost; that is the console's contract.
func (h *AdminHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var draft domain.Listing
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Failed to save listing: malformed request body"})
		return
	}

	if err := h.admin.Update(r.Context(), id, draft); err != nil {
		writeError(w, err, "Failed to save listing")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Listing updated successfully!"})
}

// HandleDelete removes the record at id. The confirmation step happens in
// the client; deleting an id that is already gone is not an error.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.admin.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Failed to delete listing")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Listing deleted successfully!"})
}

// HandleImageUpload converts uploaded image files to data URIs in part
// order, ready to be placed on a draft's image sequence.
func (h *AdminHandler) HandleImageUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Failed to read upload: " + err.Error()})
		return
	}
	defer r.MultipartForm.RemoveAll()

	uris, err := h.images.DataURIs(r.MultipartForm.File["images"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Failed to read upload: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"images": uris})
}
