// controllers/item_controller.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"Gin_postgres_redis_lost_found/app"
	"Gin_postgres_redis_lost_found/claims"
	"Gin_postgres_redis_lost_found/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// itemView is an item plus its derived status. The status never lives in
// the items table; it is computed from the claims on the way out.
type itemView struct {
	models.Item
	Status claims.Status `json:"status"`
}

// POST /api/items — the logged-in user records an item they found.
func (ic *ItemController) LogItem(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	var in struct {
		Description string     `json:"description" binding:"required"`
		Location    string     `json:"location" binding:"required"`
		FoundAt     *time.Time `json:"foundAt"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	foundAt := time.Now().UTC()
	if in.FoundAt != nil {
		foundAt = in.FoundAt.UTC()
	}
	it := &models.Item{
		ID:          uuid.NewString(),
		Description: in.Description,
		Location:    in.Location,
		FoundAt:     foundAt,
		FinderID:    uid,
	}
	if err := ic.Repo.CreateItem(c.Request.Context(), it); err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, itemView{Item: *it, Status: claims.StatusUnclaimed})
}

// GET /api/items
func (ic *ItemController) ListItems(c *gin.Context) {
	items, err := ic.Repo.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	out := make([]itemView, 0, len(items))
	for _, it := range items {
		out = append(out, itemView{Item: it, Status: claims.ResolveStatus(it.Claims)})
	}
	c.JSON(http.StatusOK, app.H{"items": out})
}

// GET /api/items/:id
func (ic *ItemController) GetItem(c *gin.Context) {
	id := c.Param("id")
	it, err := ic.Repo.FindItemByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	cs, err := ic.Repo.ListClaimsByItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	it.Claims = cs
	c.JSON(http.StatusOK, itemView{Item: *it, Status: claims.ResolveStatus(cs)})
}

// GET /api/items/:id/status
func (ic *ItemController) ItemStatus(c *gin.Context) {
	id := c.Param("id")
	st, err := ic.Claims.DerivedStatus(c.Request.Context(), id)
	if err != nil {
		c.JSON(claimStatusCode(err), app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"itemId": id, "status": st})
}

// DELETE /api/items/:id — admin only; removes the item and its claims.
func (ic *ItemController) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := ic.Repo.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
