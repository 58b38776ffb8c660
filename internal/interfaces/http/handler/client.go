package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/hourbill/backend/internal/application/partner"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// List returns all clients owned by the authenticated user
func (h *ClientHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"clients": clients})
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	var req partnerapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required fields")
		return
	}

	client, err := h.clientService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"client": client})
}

// Update overwrites an existing client
func (h *ClientHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	clientID, err := parseIDParam(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	var req partnerapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required fields")
		return
	}

	client, err := h.clientService.Update(c.Request.Context(), userID, clientID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"client": client})
}

// Delete removes a client. A client with dependent time entries or
// invoices fails on the store's restrict constraint and surfaces as 500.
func (h *ClientHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		h.Unauthorized(c)
		return
	}

	clientID, err := parseIDParam(c)
	if err != nil {
		h.NotFound(c, "Client not found")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), userID, clientID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, gin.H{"success": true})
}

// RegisterRoutes registers client routes on the given router group
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}
