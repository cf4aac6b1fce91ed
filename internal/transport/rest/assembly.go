package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/amteixeira/uvtrack-backend/internal/domain"
	"github.com/amteixeira/uvtrack-backend/internal/service/assembly"
)

// assemblyService defines the minimal interface needed by AssemblyHandler.
type assemblyService interface {
	Create(ctx context.Context, input assembly.CreateInput) (*domain.Assembly, error)
	GetDetail(ctx context.Context, assemblyID uuid.UUID) (*assembly.Detail, error)
	List(ctx context.Context) ([]domain.Assembly, error)
	Edit(ctx context.Context, input assembly.EditInput) error
	Delete(ctx context.Context, assemblyID uuid.UUID) error
	GetCatalog(ctx context.Context) (*assembly.Catalog, error)
	GetComponent(ctx context.Context, componentID uuid.UUID) (*domain.Component, error)
}

// AssemblyHandler serves assembly REST endpoints.
type AssemblyHandler struct {
	svc assemblyService
	log *slog.Logger
}

// NewAssemblyHandler creates an AssemblyHandler.
func NewAssemblyHandler(svc assemblyService, logger *slog.Logger) *AssemblyHandler {
	return &AssemblyHandler{svc: svc, log: logger.With("handler", "assembly")}
}

type assemblyRequest struct {
	RegisterDay time.Time      `json:"registerDay"`
	LineItems   map[string]int `json:"lineItems"`
}

type editAssemblyRequest struct {
	RegisterDay *time.Time     `json:"registerDay"`
	LineItems   map[string]int `json:"lineItems"`
}

type assemblyResponse struct {
	ID          string    `json:"id"`
	RegisterDay time.Time `json:"registerDay"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type lineResponse struct {
	ComponentID   string `json:"componentId"`
	ComponentName string `json:"componentName"`
	CategoryName  string `json:"categoryName"`
	Specification string `json:"specification"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unitPrice"`
	Cost          string `json:"cost"`
}

type assemblyDetailResponse struct {
	Assembly  assemblyResponse `json:"assembly"`
	Lines     []lineResponse   `json:"lines"`
	TotalCost string           `json:"totalCost"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type componentResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CategoryID    string `json:"categoryId"`
	Price         string `json:"price"`
	Specification string `json:"specification"`
}

type catalogResponse struct {
	Categories []categoryResponse  `json:"categories"`
	Components []componentResponse `json:"components"`
}

// Create handles POST /api/assemblies.
func (h *AssemblyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assemblyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lineItems, ok := parseLineItems(w, req.LineItems)
	if !ok {
		return
	}

	created, err := h.svc.Create(r.Context(), assembly.CreateInput{
		RegisterDay: req.RegisterDay,
		LineItems:   lineItems,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssemblyResponse(*created))
}

// List handles GET /api/assemblies.
func (h *AssemblyHandler) List(w http.ResponseWriter, r *http.Request) {
	assemblies, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]assemblyResponse, 0, len(assemblies))
	for _, asm := range assemblies {
		out = append(out, toAssemblyResponse(asm))
	}

	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/assemblies/{id}.
func (h *AssemblyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetDetail(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	lines := make([]lineResponse, 0, len(detail.Lines))
	for _, d := range detail.Lines {
		lines = append(lines, lineResponse{
			ComponentID:   d.Component.ID.String(),
			ComponentName: d.Component.Name,
			CategoryName:  d.Category.Name,
			Specification: d.Component.Specification,
			Quantity:      d.Line.Quantity,
			UnitPrice:     d.Component.Price.StringFixed(2),
			Cost:          d.Cost().StringFixed(2),
		})
	}

	writeJSON(w, http.StatusOK, assemblyDetailResponse{
		Assembly:  toAssemblyResponse(detail.Assembly),
		Lines:     lines,
		TotalCost: detail.TotalCost.StringFixed(2),
	})
}

// Edit handles PUT /api/assemblies/{id}.
func (h *AssemblyHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	var req editAssemblyRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lineItems, ok := parseLineItems(w, req.LineItems)
	if !ok {
		return
	}

	err := h.svc.Edit(r.Context(), assembly.EditInput{
		AssemblyID:  id,
		RegisterDay: req.RegisterDay,
		LineItems:   lineItems,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /api/assemblies/{id}.
func (h *AssemblyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Catalog handles GET /api/catalog.
func (h *AssemblyHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.GetCatalog(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := catalogResponse{
		Categories: make([]categoryResponse, 0, len(catalog.Categories)),
		Components: make([]componentResponse, 0, len(catalog.Components)),
	}
	for _, c := range catalog.Categories {
		resp.Categories = append(resp.Categories, categoryResponse{ID: c.ID.String(), Name: c.Name})
	}
	for _, c := range catalog.Components {
		resp.Components = append(resp.Components, componentResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			CategoryID:    c.CategoryID.String(),
			Price:         c.Price.StringFixed(2),
			Specification: c.Specification,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Component handles GET /api/catalog/components/{id}.
func (h *AssemblyHandler) Component(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDPath(w, r)
	if !ok {
		return
	}

	component, err := h.svc.GetComponent(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, componentResponse{
		ID:            component.ID.String(),
		Name:          component.Name,
		CategoryID:    component.CategoryID.String(),
		Price:         component.Price.StringFixed(2),
		Specification: component.Specification,
	})
}

func toAssemblyResponse(asm domain.Assembly) assemblyResponse {
	return assemblyResponse{
		ID:          asm.ID.String(),
		RegisterDay: asm.RegisterDay,
		CreatedAt:   asm.CreatedAt,
		UpdatedAt:   asm.UpdatedAt,
	}
}

func parseIDPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func parseLineItems(w http.ResponseWriter, raw map[string]int) (map[uuid.UUID]int, bool) {
	lineItems := make(map[uuid.UUID]int, len(raw))
	for k, v := range raw {
		id, err := uuid.Parse(k)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid component id in lineItems")
			return nil, false
		}
		lineItems[id] = v
	}
	return lineItems, true
}
