package httpserver

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) listComposers(c *gin.Context) {
	composers, err := h.deps.Composers.List(c.Request.Context())
	if err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	h.ok(c, composers, "composers listed", "count", len(composers))
}

func (h *handler) getComposer(c *gin.Context) {
	composer, err := h.deps.Composers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	h.ok(c, composer, "composer fetched", "id", composer.ID)
}

func (h *handler) createComposer(c *gin.Context) {
	var req composerRequest
	if err := bindJSON(c, &req); err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	composer, err := h.deps.Composers.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	h.ok(c, composer, "composer created", "id", composer.ID)
}

func (h *handler) updateComposer(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req composerRequest
	if err := bindWithParent(c, &req, func() error {
		_, err := h.deps.Composers.Get(ctx, id)
		return err
	}); err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	composer, err := h.deps.Composers.Update(ctx, id, req.toDomain())
	if err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	h.ok(c, composer, "composer updated", "id", composer.ID)
}

func (h *handler) deleteComposer(c *gin.Context) {
	composer, err := h.deps.Composers.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, msgInvalidComposer, err)
		return
	}
	h.ok(c, composer, "composer deleted", "id", composer.ID)
}
