package handlers

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/models"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
)

type ProductHandler struct {
	products *repository.Products
	log      logrus.FieldLogger
}

func NewProductHandler(products *repository.Products, log logrus.FieldLogger) *ProductHandler {
	return &ProductHandler{products: products, log: log}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context(), SessionFrom(r))
	if err != nil {
		writeError(w, h.log, "Product.List", err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Search(r.Context(), SessionFrom(r), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, h.log, "Product.Search", err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if !decodeProduct(w, r, &p) {
		return
	}
	p.ID = ""
	saved, err := h.products.Upsert(r.Context(), SessionFrom(r), p)
	if err != nil {
		writeError(w, h.log, "Product.Create", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, saved)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess := SessionFrom(r)
	id := r.PathValue("id")
	if _, ok, err := h.products.FindByID(r.Context(), sess, id); err != nil {
		writeError(w, h.log, "Product.Update", err)
		return
	} else if !ok {
		httpx.JSONError(w, http.StatusNotFound, "product not found", nil)
		return
	}

	var p models.Product
	if !decodeProduct(w, r, &p) {
		return
	}
	p.ID = id
	saved, err := h.products.Upsert(r.Context(), sess, p)
	if err != nil {
		writeError(w, h.log, "Product.Update", err)
		return
	}
	httpx.JSON(w, http.StatusOK, saved)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), SessionFrom(r), r.PathValue("id")); err != nil {
		writeError(w, h.log, "Product.Delete", err)
		return
	}
	httpx.NoContent(w)
}

func decodeProduct(w http.ResponseWriter, r *http.Request, p *models.Product) bool {
	if err := httpx.Decode(r, p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return false
	}
	p.Name = strings.TrimSpace(p.Name)
	p.HSN = strings.TrimSpace(p.HSN)
	return valid(w, p)
}
