package handler

import (
	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListJobs(c *gin.Context) {
	jobs, err := h.Store.ListJobs(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.OK(c, gin.H{"jobs": jobs, "total": len(jobs)})
}

func (h *Handler) GetJob(c *gin.Context) {
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}

	job, err := h.Store.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if job == nil {
		response.NotFound(c, "job not found")
		return
	}
	response.OK(c, job)
}

// PatchJob updates the two mutable job fields. A skills change recomputes
// the cached match score of every application on the job.
func (h *Handler) PatchJob(c *gin.Context) {
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}

	var req model.PatchJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job, err := h.Store.GetJob(c.Request.Context(), jobID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if job == nil {
		response.NotFound(c, "job not found")
		return
	}

	if req.IsActive != nil {
		if err := h.Store.SetJobActive(c.Request.Context(), jobID, *req.IsActive); err != nil {
			h.respondError(c, err)
			return
		}
	}

	rescored := 0
	if req.Skills != nil {
		rescored, err = h.Engine.UpdateJobSkills(c.Request.Context(), jobID, *req.Skills)
		if err != nil {
			h.respondError(c, err)
			return
		}
		h.Boards.Invalidate(c.Request.Context(), jobID)
	}

	response.OK(c, gin.H{"job_id": jobID, "rescored": rescored})
}

func (h *Handler) RecordJobView(c *gin.Context) {
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}
	if err := h.Store.IncrementJobViews(c.Request.Context(), jobID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, "view recorded")
}

func (h *Handler) RecordJobClick(c *gin.Context) {
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}
	if err := h.Store.IncrementJobClicks(c.Request.Context(), jobID); err != nil {
		h.respondError(c, err)
		return
	}
	response.Message(c, "click recorded")
}
