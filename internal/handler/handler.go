package handler

import (
	"errors"

	"github.com/anhtu2808/talent-nexus-sub000/internal/cache"
	"github.com/anhtu2808/talent-nexus-sub000/internal/pipeline"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Logger *zap.Logger
	Engine *pipeline.Engine
	Store  pipeline.Store
	Boards *cache.BoardCache
}

// respondError maps the pipeline error taxonomy onto HTTP codes. NotFound and
// InvalidReference indicate a caller bug, so they are logged as well as
// returned.
func (h *Handler) respondError(c *gin.Context, err error) {
	var (
		notFound   *pipeline.NotFoundError
		duplicate  *pipeline.DuplicateApplicationError
		invalidRef *pipeline.InvalidReferenceError
		illegal    *pipeline.IllegalTransitionError
		conflict   *pipeline.SlotConflictError
	)

	switch {
	case errors.As(err, &notFound):
		h.Logger.Sugar().Warnw("entity not found", "path", c.Request.URL.Path, "err", err)
		response.NotFound(c, err.Error())
	case errors.As(err, &duplicate):
		response.Conflict(c, "DUPLICATE_APPLICATION", err.Error())
	case errors.As(err, &invalidRef):
		h.Logger.Sugar().Warnw("invalid reference", "path", c.Request.URL.Path, "err", err)
		response.ValidationError(c, err.Error())
	case errors.As(err, &illegal):
		response.Conflict(c, "ILLEGAL_TRANSITION", err.Error())
	case errors.As(err, &conflict):
		response.Conflict(c, "SLOT_CONFLICT", err.Error())
	case errors.Is(err, pipeline.ErrEmptyNoteContent):
		response.BadRequest(c, err.Error())
	default:
		h.Logger.Sugar().Errorw("request failed", "path", c.Request.URL.Path, "err", err)
		response.InternalError(c, "")
	}
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
