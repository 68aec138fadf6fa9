package routes

import (
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

type reviewRoutes struct {
	reviews ReviewService
}

type addReviewRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

func (h *reviewRoutes) add(w http.ResponseWriter, r *http.Request, user models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req addReviewRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.reviews.AddReview(r.Context(), model, user, req.Score, req.Comment); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *reviewRoutes) list(w http.ResponseWriter, r *http.Request, _ models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	reviews, err := h.reviews.GetProductReviews(r.Context(), model)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, reviews)
}

func (h *reviewRoutes) delete(w http.ResponseWriter, r *http.Request, user models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviews.DeleteReview(r.Context(), model, user); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *reviewRoutes) deleteOfProduct(w http.ResponseWriter, r *http.Request, _ models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.reviews.DeleteReviewsOfProduct(r.Context(), model); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *reviewRoutes) deleteAll(w http.ResponseWriter, r *http.Request, _ models.User) {
	if err := h.reviews.DeleteAllReviews(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}
