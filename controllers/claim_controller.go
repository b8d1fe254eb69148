// controllers/claim_controller.go
package controllers

import (
	"errors"
	"net/http"

	"Gin_postgres_redis_lost_found/app"
	"Gin_postgres_redis_lost_found/claims"

	"github.com/gin-gonic/gin"
)

type ClaimController struct{ *Srv }

func NewClaimController(s *Srv) *ClaimController { return &ClaimController{Srv: s} }

// POST /api/items/:id/claim — the session user claims the item.
func (cc *ClaimController) SubmitClaim(c *gin.Context) {
	itemID := c.Param("id")
	if itemID == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "missing item id"})
		return
	}
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}

	claim, err := cc.Claims.SubmitClaim(c.Request.Context(), itemID, uid)
	if err != nil {
		c.JSON(claimStatusCode(err), app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, claim)
}

// GET /api/claims — the session user's claim history, newest first.
func (cc *ClaimController) MyClaims(c *gin.Context) {
	uid, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	cs, err := cc.Claims.ClaimHistory(c.Request.Context(), uid)
	if err != nil {
		c.JSON(claimStatusCode(err), app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"claims": cs})
}

// claimStatusCode maps failure kinds onto HTTP statuses. Clients branch on
// the status code, not the message.
func claimStatusCode(err error) int {
	switch {
	case errors.Is(err, claims.ErrItemNotFound), errors.Is(err, claims.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, claims.ErrAlreadyClaimed):
		return http.StatusConflict
	case errors.Is(err, claims.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
