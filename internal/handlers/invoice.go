package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vijay-heerarajan/billing-app/httpx"
	"github.com/vijay-heerarajan/billing-app/internal/export"
	"github.com/vijay-heerarajan/billing-app/internal/logging"
	"github.com/vijay-heerarajan/billing-app/internal/render"
	"github.com/vijay-heerarajan/billing-app/internal/repository"
	"github.com/vijay-heerarajan/billing-app/internal/services"
)

type InvoiceHandler struct {
	service  *services.InvoiceService
	invoices *repository.Invoices
	users    *repository.Users
	renderer render.Renderer
	pdf      *render.PDFRenderer
	log      logrus.FieldLogger
}

func NewInvoiceHandler(service *services.InvoiceService, invoices *repository.Invoices, users *repository.Users, renderer render.Renderer, log logrus.FieldLogger) *InvoiceHandler {
	return &InvoiceHandler{service: service, invoices: invoices, users: users, renderer: renderer, pdf: render.NewPDFRenderer(), log: log}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.List(r.Context(), SessionFrom(r))
	if err != nil {
		writeError(w, h.log, "Invoice.List", err)
		return
	}
	httpx.JSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) NextNumber(w http.ResponseWriter, r *http.Request) {
	next, err := h.service.NextNumber(r.Context(), SessionFrom(r))
	if err != nil {
		writeError(w, h.log, "Invoice.NextNumber", err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"invoiceNo": next})
}

func (h *InvoiceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context(), SessionFrom(r))
	if err != nil {
		writeError(w, h.log, "Invoice.Summary", err)
		return
	}
	httpx.JSON(w, http.StatusOK, sum)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.GenerateRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	if !valid(w, &req) {
		return
	}
	inv, err := h.service.Generate(r.Context(), SessionFrom(r), req)
	if err != nil {
		writeError(w, h.log, "Invoice.Create", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	inv, ok, err := h.invoices.FindByID(r.Context(), SessionFrom(r), r.PathValue("id"))
	if err != nil {
		writeError(w, h.log, "Invoice.Get", err)
		return
	}
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "invoice not found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

// Print renders the invoice as a printable HTML document.
func (h *InvoiceHandler) Print(w http.ResponseWriter, r *http.Request) {
	input, ok := h.renderInput(w, r, "Invoice.Print")
	if !ok {
		return
	}
	doc, err := h.renderer.RenderHTML(input)
	if err != nil {
		logging.LogError(h.log, "handlers", "Invoice.Print", "render invoice", input.Invoice.Number, err)
		httpx.JSONError(w, http.StatusInternalServerError, "render_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(doc))
}

// PDF renders the invoice as a PDF download.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	input, ok := h.renderInput(w, r, "Invoice.PDF")
	if !ok {
		return
	}
	doc, err := h.pdf.RenderPDF(input)
	if err != nil {
		logging.LogError(h.log, "handlers", "Invoice.PDF", "render invoice", input.Invoice.Number, err)
		httpx.JSONError(w, http.StatusInternalServerError, "render_failed", nil)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+input.Invoice.Number+".pdf")
	_, _ = w.Write(doc)
}

// renderInput loads the invoice named by the path and the issuing profile.
func (h *InvoiceHandler) renderInput(w http.ResponseWriter, r *http.Request, funcName string) (render.RenderInput, bool) {
	sess := SessionFrom(r)
	if !sess.Active() {
		writeError(w, h.log, funcName, repository.ErrNoActiveUser)
		return render.RenderInput{}, false
	}
	inv, ok, err := h.invoices.FindByID(r.Context(), sess, r.PathValue("id"))
	if err != nil {
		writeError(w, h.log, funcName, err)
		return render.RenderInput{}, false
	}
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "invoice not found", nil)
		return render.RenderInput{}, false
	}
	profile, _, err := h.users.Profile(r.Context(), sess.User.ID)
	if err != nil {
		writeError(w, h.log, funcName, err)
		return render.RenderInput{}, false
	}
	return render.NewInput(profile, inv), true
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.invoices.Delete(r.Context(), SessionFrom(r), r.PathValue("id")); err != nil {
		writeError(w, h.log, "Invoice.Delete", err)
		return
	}
	httpx.NoContent(w)
}

// Export downloads the invoice history as an XLSX workbook.
func (h *InvoiceHandler) Export(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.invoices.List(r.Context(), SessionFrom(r))
	if err != nil {
		writeError(w, h.log, "Invoice.Export", err)
		return
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, invoices); err != nil {
		writeError(w, h.log, "Invoice.Export", err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=invoices.xlsx")
	if _, err := buf.WriteTo(w); err != nil {
		logging.LogError(h.log, "handlers", "Invoice.Export", "write workbook", len(invoices), err)
	}
}
