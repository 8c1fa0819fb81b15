package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/annel0/noisefield/internal/registry"
)

// CreateContextRequest создаёт контекст из сида или явной перестановки.
// Если задана перестановка, сид не используется.
type CreateContextRequest struct {
	Seed        *int64 `json:"seed"`
	Permutation []int  `json:"permutation"`
}

func (rs *RestServer) handleCreateContext(c *gin.Context) {
	var req CreateContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	var (
		h   registry.Handle
		err error
	)
	switch {
	case req.Permutation != nil:
		h, err = rs.registry.CreateFromPermutation(req.Permutation)
	case req.Seed != nil:
		h, err = rs.registry.Create(*req.Seed)
	default:
		respondError(c, http.StatusBadRequest, "Нужно указать seed или permutation")
		return
	}
	if err != nil {
		rs.respondErr(c, err)
		return
	}

	info, _, err := rs.registry.Get(h)
	if err != nil {
		rs.respondErr(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Контекст создан", info)
}

func (rs *RestServer) handleListContexts(c *gin.Context) {
	respondOK(c, http.StatusOK, "Контексты получены", rs.registry.List())
}

func (rs *RestServer) handleGetContext(c *gin.Context) {
	info, _, err := rs.registry.Get(registry.Handle(c.Param("id")))
	if err != nil {
		rs.respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Контекст найден", info)
}

func (rs *RestServer) handleDestroyContext(c *gin.Context) {
	if err := rs.registry.Destroy(registry.Handle(c.Param("id"))); err != nil {
		rs.respondErr(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Контекст освобождён", nil)
}
