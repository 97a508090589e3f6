package gin

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/pagelens/pagelens"
)

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the pagelens API endpoints.
type Handler struct {
	Fetcher   pagelens.Fetcher
	Extractor pagelens.Extractor
	Contacts  pagelens.ContactService
	Storage   Pinger // optional

	// DefaultURL is scraped when the request carries no url parameter.
	DefaultURL string
}

// GetRoot serves the service banner.
func (h *Handler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pagelens backend running"})
}

// GetHello serves a trivial liveness greeting for front-end smoke checks.
func (h *Handler) GetHello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// GetScrape fetches the requested page and returns its normalized document.
func (h *Handler) GetScrape(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		target = h.DefaultURL
	}
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "url parameter required"})
		return
	}

	html, err := h.Fetcher.Fetch(c.Request.Context(), target)
	if err != nil {
		slog.Error("Fetch failed", "url", target, "error", err)
		c.JSON(statusForCode(pagelens.ErrorCode(err)), gin.H{
			"detail": fmt.Sprintf("Failed to fetch site: %s", pagelens.ErrorMessage(err)),
		})
		return
	}

	doc, err := h.Extractor.Extract(target, html)
	if err != nil {
		slog.Error("Extraction failed", "url", target, "error", err)
		c.JSON(statusForCode(pagelens.ErrorCode(err)), gin.H{
			"detail": pagelens.ErrorMessage(err),
		})
		return
	}

	body, err := json.Marshal(doc)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	// Extraction is deterministic, so the hash of the encoded document is a
	// stable validator for the same input markup.
	c.Header("ETag", fmt.Sprintf("%q", fmt.Sprintf("%016x", xxhash.Sum64(body))))
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// contactRequest is the wire shape of a contact form submission.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// PostContact validates and persists a contact form submission.
func (h *Handler) PostContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	msg := &pagelens.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Message: req.Message,
	}

	if err := h.Contacts.CreateContactMessage(c.Request.Context(), msg); err != nil {
		if pagelens.ErrorCode(err) == pagelens.EINVALID {
			c.JSON(http.StatusBadRequest, gin.H{"detail": pagelens.ErrorMessage(err)})
			return
		}
		slog.Error("Contact persistence failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to store message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": msg.ID})
}

// GetHealth reports backend and storage status.
func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"backend":   "ok",
		"database":  "not_configured",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	status := http.StatusOK
	if h.Storage != nil {
		if err := h.Storage.Ping(c.Request.Context()); err != nil {
			slog.Error("Storage health check failed", "error", err)
			health["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			health["database"] = "connected"
		}
	}

	c.JSON(status, health)
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case pagelens.EINVALID:
		return http.StatusBadRequest
	case pagelens.ENOTFOUND:
		return http.StatusNotFound
	case pagelens.ETOOLARGE:
		return http.StatusRequestEntityTooLarge
	case pagelens.EUNPARSABLE:
		return http.StatusUnprocessableEntity
	case pagelens.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
