package routes

import (
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

type cartRoutes struct {
	carts CartService
}

type addToCartRequest struct {
	Model string `json:"model" validate:"required"`
}

func (h *cartRoutes) get(w http.ResponseWriter, r *http.Request, user models.User) {
	cart, err := h.carts.GetCart(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, cart)
}

func (h *cartRoutes) add(w http.ResponseWriter, r *http.Request, user models.User) {
	var req addToCartRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.carts.AddToCart(r.Context(), user, req.Model); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *cartRoutes) checkout(w http.ResponseWriter, r *http.Request, user models.User) {
	if err := h.carts.CheckoutCart(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *cartRoutes) history(w http.ResponseWriter, r *http.Request, user models.User) {
	carts, err := h.carts.GetCustomerCarts(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, carts)
}

func (h *cartRoutes) removeProduct(w http.ResponseWriter, r *http.Request, user models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.carts.RemoveProductFromCart(r.Context(), user, model); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *cartRoutes) clear(w http.ResponseWriter, r *http.Request, user models.User) {
	if err := h.carts.ClearCart(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *cartRoutes) deleteAll(w http.ResponseWriter, r *http.Request, _ models.User) {
	if err := h.carts.DeleteAllCarts(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *cartRoutes) all(w http.ResponseWriter, r *http.Request, _ models.User) {
	carts, err := h.carts.GetAllCarts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, carts)
}
