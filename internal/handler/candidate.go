package handler

import (
	"github.com/anhtu2808/talent-nexus-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCandidate(c *gin.Context) {
	candidateID, ok := uuidParam(c, "candidate_id")
	if !ok {
		return
	}

	candidate, err := h.Store.GetCandidate(c.Request.Context(), candidateID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if candidate == nil {
		response.NotFound(c, "candidate not found")
		return
	}
	response.OK(c, candidate)
}

func (h *Handler) ListCandidateCVs(c *gin.Context) {
	candidateID, ok := uuidParam(c, "candidate_id")
	if !ok {
		return
	}

	cvs, err := h.Store.ListCVsByCandidate(c.Request.Context(), candidateID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"cvs": cvs, "total": len(cvs)})
}
