package routes

import (
	"net/http"

	"ezelectronics/models"
	"ezelectronics/utils"
)

type productRoutes struct {
	products ProductService
}

type registerProductRequest struct {
	Model        string          `json:"model" validate:"required"`
	Category     models.Category `json:"category" validate:"required,oneof=Smartphone Laptop Appliance"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	Details      string          `json:"details"`
	SellingPrice float64         `json:"sellingPrice" validate:"required,gt=0"`
	ArrivalDate  string          `json:"arrivalDate" validate:"omitempty,datetime=2006-01-02"`
}

type changeQuantityRequest struct {
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	ChangeDate string `json:"changeDate" validate:"omitempty,datetime=2006-01-02"`
}

type sellRequest struct {
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	SellingDate string `json:"sellingDate" validate:"omitempty,datetime=2006-01-02"`
}

type productQuery struct {
	Grouping string `validate:"omitempty,oneof=category model"`
	Category string `validate:"omitempty,oneof=Smartphone Laptop Appliance"`
	Model    string
}

type quantityResponse struct {
	Quantity int `json:"quantity"`
}

func (h *productRoutes) register(w http.ResponseWriter, r *http.Request, _ models.User) {
	var req registerProductRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	err := h.products.RegisterProducts(r.Context(), models.Product{
		Model:        req.Model,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Details:      req.Details,
		SellingPrice: req.SellingPrice,
		ArrivalDate:  req.ArrivalDate,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *productRoutes) changeQuantity(w http.ResponseWriter, r *http.Request, _ models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req changeQuantityRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	quantity, err := h.products.ChangeProductQuantity(r.Context(), model, req.Quantity, req.ChangeDate)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, quantityResponse{Quantity: quantity})
}

func (h *productRoutes) sell(w http.ResponseWriter, r *http.Request, _ models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req sellRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	quantity, err := h.products.SellProduct(r.Context(), model, req.Quantity, req.SellingDate)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, quantityResponse{Quantity: quantity})
}

func parseProductQuery(r *http.Request) (productQuery, error) {
	q := r.URL.Query()
	query := productQuery{
		Grouping: q.Get("grouping"),
		Category: q.Get("category"),
		Model:    q.Get("model"),
	}
	return query, validateStruct(query)
}

func (h *productRoutes) list(w http.ResponseWriter, r *http.Request, _ models.User) {
	query, err := parseProductQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	products, err := h.products.GetProducts(r.Context(), query.Grouping, query.Category, query.Model)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, products)
}

func (h *productRoutes) listAvailable(w http.ResponseWriter, r *http.Request, _ models.User) {
	query, err := parseProductQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	products, err := h.products.GetAvailableProducts(r.Context(), query.Grouping, query.Category, query.Model)
	if err != nil {
		writeError(w, err)
		return
	}
	utils.SendJSONResponse(w, http.StatusOK, products)
}

func (h *productRoutes) delete(w http.ResponseWriter, r *http.Request, _ models.User) {
	model, err := modelParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.products.DeleteProduct(r.Context(), model); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}

func (h *productRoutes) deleteAll(w http.ResponseWriter, r *http.Request, _ models.User) {
	if err := h.products.DeleteAllProducts(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	sendOK(w)
}
