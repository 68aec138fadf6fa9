package routes

import (
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

type userRoutes struct {
	users UserService
}

type createUserRequest struct {
	Username string      `json:"username" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Surname  string      `json:"surname" validate:"required"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role" validate:"required,oneof=Customer Manager Admin"`
}

type updateUserRequest struct {
	Name      string `json:"name" validate:"required"`
	Surname   string `json:"surname" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Birthdate string `json:"birthdate" validate:"required,datetime=2006-01-02"`
}

func (h *userRoutes) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.users.CreateUser(r.Context(), req.Username, req.Name, req.Surname, req.Password, req.Role); err != nil {
		writeError(w, err)
		return
	}

	sendOK(w)
}

func (h *userRoutes) list(w http.ResponseWriter, r *http.Request, _ models.User) {
	users, err := h.users.GetUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, users)
}

func (h *userRoutes) listByRole(w http.ResponseWriter, r *http.Request, _ models.User) {
	role, err := pathValue(r, "role", roleTag)
	if err != nil {
		writeError(w, err)
		return
	}

	users, err := h.users.GetUsersByRole(r.Context(), models.Role(role))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, users)
}

func (h *userRoutes) get(w http.ResponseWriter, r *http.Request, caller models.User) {
	user, err := h.users.GetUserByUsername(r.Context(), caller, r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, user)
}

func (h *userRoutes) delete(w http.ResponseWriter, r *http.Request, caller models.User) {
	if err := h.users.DeleteUser(r.Context(), caller, r.PathValue("username")); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *userRoutes) deleteAll(w http.ResponseWriter, r *http.Request, _ models.User) {
	if err := h.users.DeleteAll(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *userRoutes) update(w http.ResponseWriter, r *http.Request, caller models.User) {
	var req updateUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.users.UpdateUserInfo(r.Context(), caller, req.Name, req.Surname, req.Address, req.Birthdate, r.PathValue("username"))
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, user)
}
