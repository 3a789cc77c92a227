// Package http exposes the repository contract to UI collaborators over a
// local HTTP API.
package http

import (
	"context"
	"net/http"

	"github.com/lmartins/servicofacil/internal/models"
)

// AccountService defines the account operations required by the handlers.
type AccountService interface {
	// VerifyLogin returns the matching account or nil.
	VerifyLogin(ctx context.Context, username, password string) (*models.Account, error)
	// ChangePassword reports whether the account existed.
	ChangePassword(ctx context.Context, username, newPassword string) (bool, error)
	// ResetAdminPassword restores the default admin credentials.
	ResetAdminPassword(ctx context.Context) (bool, error)
	// RenameActiveUser renames the privileged account.
	RenameActiveUser(ctx context.Context, newUsername string) error
}

// AccountHandler handles login and credential management requests.
type AccountHandler struct {
	// Service performs the underlying account operations.
	Service AccountService
}

// Login handles POST /api/login. A credential mismatch is 401; the response
// never includes the stored password.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	account, err := h.Service.VerifyLogin(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	if account == nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{
		ID:         account.ID,
		Username:   account.Username,
		FirstLogin: account.FirstLogin,
	})
}

// ChangePassword handles POST /api/password.
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	ok, err := h.Service.ChangePassword(r.Context(), req.Username, req.NewPassword)
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ResetPassword handles POST /api/password/reset.
func (h *AccountHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ok, err := h.Service.ResetAdminPassword(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !ok {
		http.Error(w, "admin account not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Rename handles POST /api/username.
func (h *AccountHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req RenameRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if err := h.Service.RenameActiveUser(r.Context(), req.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "username": req.Username})
}
