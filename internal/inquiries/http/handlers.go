package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	httpapi "github.com/apexforge/studio-backend/internal/api/http"
)

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		httpapi.RespondBindError(c, err)
		return
	}

	inq, err := h.svc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		httpapi.RespondError(c, "inquiry.create", err)
		return
	}
	c.JSON(http.StatusOK, inq)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		httpapi.RespondError(c, "inquiry.list", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpapi.RespondError(c, "inquiry.delete", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
