package handler

import (
	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

// BookInterview reserves a confirmed slot and moves the application into
// interviewing; both effects commit together or not at all.
func (h *Handler) BookInterview(c *gin.Context) {
	var req model.BookInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slot, err := h.Engine.BookInterview(
		c.Request.Context(),
		req.ApplicationID, req.CandidateID, req.JobID, req.RecruiterID,
		req.ScheduledAt,
	)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Boards.Invalidate(c.Request.Context(), req.JobID)
	response.Created(c, slot)
}
