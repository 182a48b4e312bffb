package handler

import (
	"encoding/json"
	"net/http"

	"github.com/anhtu2808/talent-nexus-sub000/internal/pipeline"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListApplicants(c *gin.Context) {
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}

	var criteria pipeline.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	applicants, err := h.Engine.ApplicantsForJob(c.Request.Context(), jobID, criteria)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{"applicants": applicants, "total": len(applicants)})
}

func (h *Handler) GetBoard(c *gin.Context) {
	jobID, ok := uuidParam(c, "job_id")
	if !ok {
		return
	}

	var criteria pipeline.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	order := pipeline.SortByAppliedAt
	if c.Query("sort") == string(pipeline.SortByMatchScore) {
		order = pipeline.SortByMatchScore
	}

	// only the unfiltered board is cached; filtered views are cheap enough
	// to build per request
	cacheable := isDefaultCriteria(criteria)
	if cacheable {
		if payload, ok := h.Boards.Get(c.Request.Context(), jobID, string(order)); ok {
			c.Data(http.StatusOK, "application/json", payload)
			return
		}
	}

	board, err := h.Engine.BoardForJob(c.Request.Context(), jobID, criteria, order)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if cacheable {
		if payload, err := json.Marshal(response.Envelope{Success: true, Data: board}); err == nil {
			h.Boards.Set(c.Request.Context(), jobID, string(order), payload)
		}
	}
	response.OK(c, board)
}

func isDefaultCriteria(c pipeline.Criteria) bool {
	return c.Query == "" &&
		(c.Location == "" || c.Location == pipeline.AllCities) &&
		c.MinExperience == nil && c.MaxExperience == nil &&
		len(c.Skills) == 0 && c.Language == "" &&
		c.MinScore == nil
}
