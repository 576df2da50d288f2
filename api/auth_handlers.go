package api

import (
	"log/slog"
	"net/http"
)

// Login handles POST /auth/login.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[LoginRequest](w, r)
	if !ok {
		return
	}
	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := a.users.Login(req.Username, req.Password)
	if err != nil {
		a.audit.log(AuditLoginFailure, r, slog.String("username", req.Username))
		writeMessage(w, http.StatusNotFound, "Invalid username or password")
		return
	}

	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not login! Please try again later.")
		return
	}
	a.sessions.Register(token, user)

	a.audit.log(AuditLoginSuccess, r, slog.String("username", user.Username))
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: user})
}

// Register handles POST /auth/register.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[RegisterRequest](w, r)
	if !ok {
		return
	}
	if req.User.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	user, err := a.users.Register(req.User, req.Password)
	if err != nil {
		a.audit.log(AuditRegisterFailure, r, slog.String("username", req.User.Username))
		writeMessage(w, http.StatusNotFound, "Could not register! Please try again later.")
		return
	}

	token, err := a.tokens.Issue(user.Username)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Could not register! Please try again later.")
		return
	}
	a.sessions.Register(token, user)

	a.audit.log(AuditRegister, r, slog.String("username", user.Username))
	writeJSON(w, http.StatusOK, RegisterResponse{Token: token})
}

// Logout handles GET /auth/logout. The gate already established the token;
// logging out revokes its session entry, leaving the token cryptographically
// valid but unauthorized.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	token := tokenFromContext(r.Context())
	if !a.sessions.Revoke(token) {
		writeMessage(w, http.StatusBadRequest, "Could not logout! Please try again later.")
		return
	}
	a.audit.log(AuditLogout, r, slog.String("username", usernameFromContext(r.Context())))
	writeMessage(w, http.StatusOK, "Logged out")
}

// ChangePassword handles POST /auth/change-password.
func (a *API) ChangePassword(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeJSON[ChangePasswordRequest](w, r)
	if !ok {
		return
	}
	if req.UserID == "" || req.OldPassword == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := a.users.ChangePassword(req.UserID, req.OldPassword, req.NewPassword); err != nil {
		writeMessage(w, http.StatusBadRequest, "Could not change password! Please try again later.")
		return
	}

	a.audit.log(AuditPasswordChanged, r, slog.String("user_id", req.UserID))
	writeMessage(w, http.StatusOK, "Password changed")
}
