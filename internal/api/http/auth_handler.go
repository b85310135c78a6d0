package http

import (
	"encoding/json"
	"net/http"

	"heavylingam-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authSvc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// HandleLogin checks credentials and issues a session token. A failed
// sign-in changes nothing server-side.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, "Failed to login")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

// HandleLogout ends the session. Sessions are stateless tokens, so this is
// an acknowledgement for the client to discard its copy.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		writeError(w, err, "Failed to logout")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
