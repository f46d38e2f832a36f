package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"devd.dev/internal/components"
	"devd.dev/internal/services"
)

// PortfolioHandler serves the page and the non-project sections
type PortfolioHandler struct {
	portfolioService *services.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(ps *services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: ps}
}

// Page handles GET /
func (h *PortfolioHandler) Page(w http.ResponseWriter, r *http.Request) {
	// Render fully before writing so a failure can still become a 500
	var buf bytes.Buffer
	if err := components.Render(&buf, h.portfolioService.Current()); err != nil {
		zap.L().Error("Failed to render page", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// GetHero handles GET /api/hero
func (h *PortfolioHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Hero())
}

// ListClients handles GET /api/clients
func (h *PortfolioHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Clients())
}

// GetResume handles GET /api/resume
func (h *PortfolioHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Resume())
}

// ListTags handles GET /api/tags
func (h *PortfolioHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Tags())
}
