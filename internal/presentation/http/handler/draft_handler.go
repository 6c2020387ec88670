package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/scrubkh/invoice-api/internal/application/service"
	"github.com/scrubkh/invoice-api/internal/domain/entity"
	"github.com/scrubkh/invoice-api/internal/domain/enum"
	"github.com/scrubkh/invoice-api/internal/presentation/http/dto/response"
)

// DraftHandler handles draft-related HTTP requests
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// DraftRequest mirrors the draft shape pre-validation: blank item
// names and zero numbers are acceptable here.
type DraftRequest struct {
	CustomerName    string             `json:"customer_name"`
	Date            string             `json:"date"`
	Currency        string             `json:"currency"`
	Items           []DraftItemRequest `json:"items"`
	DiscountPercent float64            `json:"discount_percent"`
	DeliveryFee     float64            `json:"delivery_fee"`
}

// DraftItemRequest represents a line item in the request
type DraftItemRequest struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ToDraft converts the request into the domain draft shape.
func (r *DraftRequest) ToDraft() *entity.Draft {
	items := make([]entity.DraftItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = entity.DraftItem{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return &entity.Draft{
		CustomerName:    r.CustomerName,
		Date:            r.Date,
		Currency:        enum.Currency(r.Currency),
		Items:           items,
		DiscountPercent: r.DiscountPercent,
		DeliveryFee:     r.DeliveryFee,
	}
}

// Get handles loading the saved draft
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.draftService.GetDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if draft == nil {
		response.NotFound(c, "No saved draft")
		return
	}

	response.OK(c, "Draft retrieved successfully", draft)
}

// Save handles overwriting the draft slot
func (h *DraftHandler) Save(c *gin.Context) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft := h.draftService.SaveDraft(c.Request.Context(), req.ToDraft())
	response.OK(c, "Draft saved", draft)
}

// Clear handles emptying the draft slot
func (h *DraftHandler) Clear(c *gin.Context) {
	if err := h.draftService.ClearDraft(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddItemRequest represents the add item request body. Quantity and
// unit price arrive as typed text and go through the lenient amount
// parser; junk becomes 0, never an error.
type AddItemRequest struct {
	Name      string `json:"name"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// AddItem handles appending a line item to the draft
func (h *DraftHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft, item, err := h.draftService.AddItem(c.Request.Context(), &service.AddItemInput{
		Name:      req.Name,
		Quantity:  parseAmount(req.Quantity),
		UnitPrice: parseAmount(req.UnitPrice),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item added", gin.H{"draft": draft, "item": item})
}

// UpdateItemRequest is a tagged single-field update.
type UpdateItemRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateItem handles a tagged field update on one line item
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	itemID := c.Param("id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	draft, err := h.draftService.UpdateItem(c.Request.Context(), &service.UpdateItemInput{
		ItemID: itemID,
		Field:  entity.ItemField(req.Field),
		Value:  req.Value,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated", draft)
}

// RemoveItem handles deleting a line item from the draft
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	itemID := c.Param("id")

	draft, err := h.draftService.RemoveItem(c.Request.Context(), itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", draft)
}
