package routes

import (
	"net/http"

	"ezelectronics/errs"
	"ezelectronics/models"
	"ezelectronics/utils"

	"github.com/gorilla/sessions"
	"golang.org/x/exp/slices"
)

const (
	sessionName = "ezelectronics-session"
	usernameKey = "username"
)

// userHandler is a handler that runs for an authenticated user.
type userHandler func(w http.ResponseWriter, r *http.Request, user models.User)

type auth struct {
	store sessions.Store
	users UserService
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (a *auth) login(w http.ResponseWriter, r *http.Request) {
	// Parse and validate the credentials
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := a.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// A broken cookie from an older secret still yields a usable new session
	session, _ := a.store.Get(r, sessionName)
	session.Values[usernameKey] = user.Username
	if err := session.Save(r, w); err != nil {
		writeError(w, utils.ErrorWithTrace(err, "failed to save session"))
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, user)
}

func (a *auth) current(w http.ResponseWriter, r *http.Request, user models.User) {
	utils.SendJSONResponse(w, http.StatusOK, user)
}

func (a *auth) logout(w http.ResponseWriter, r *http.Request, user models.User) {
	session, _ := a.store.Get(r, sessionName)
	delete(session.Values, usernameKey)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		writeError(w, utils.ErrorWithTrace(err, "failed to clear session"))
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// sessionUser resolves the user of the request session.
func (a *auth) sessionUser(r *http.Request) (models.User, error) {
	session, err := a.store.Get(r, sessionName)
	if err != nil {
		return models.User{}, errs.ErrUnauthorizedUser
	}
	username, ok := session.Values[usernameKey].(string)
	if !ok || username == "" {
		return models.User{}, errs.ErrUnauthorizedUser
	}

	user, err := a.users.SessionUser(r.Context(), username)
	if err != nil {
		// The account was deleted after login
		return models.User{}, errs.ErrUnauthorizedUser
	}
	return user, nil
}

func (a *auth) loggedIn(next userHandler) http.HandlerFunc {
	return a.withRole(next, nil)
}

func (a *auth) customer(next userHandler) http.HandlerFunc {
	return a.withRole(next, errs.ErrUserNotCustomer, models.RoleCustomer)
}

func (a *auth) admin(next userHandler) http.HandlerFunc {
	return a.withRole(next, errs.ErrUserNotAdmin, models.RoleAdmin)
}

func (a *auth) adminOrManager(next userHandler) http.HandlerFunc {
	return a.withRole(next, errs.ErrUserNotManager, models.RoleAdmin, models.RoleManager)
}

// withRole admits logged-in users whose role is one of roles, or any
// logged-in user when roles is empty. Others get denied.
func (a *auth) withRole(next userHandler, denied error, roles ...models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.sessionUser(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if len(roles) > 0 && !slices.Contains(roles, user.Role) {
			writeError(w, denied)
			return
		}

		next(w, r, user)
	}
}
