package handler

import (
	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateApplication(c *gin.Context) {
	var req model.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.Engine.CreateApplication(c.Request.Context(), req.JobID, req.CandidateID, req.CVID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Boards.Invalidate(c.Request.Context(), app.JobID)
	response.Created(c, app)
}

func (h *Handler) TransitionApplication(c *gin.Context) {
	appID, ok := uuidParam(c, "application_id")
	if !ok {
		return
	}

	var req model.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !req.Status.Valid() {
		response.BadRequest(c, "unknown status: "+string(req.Status))
		return
	}

	app, err := h.Engine.Transition(c.Request.Context(), appID, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Boards.Invalidate(c.Request.Context(), app.JobID)
	response.OK(c, app)
}

// ReopenApplication is the administrative override for terminal applications.
func (h *Handler) ReopenApplication(c *gin.Context) {
	appID, ok := uuidParam(c, "application_id")
	if !ok {
		return
	}

	app, err := h.Engine.Reopen(c.Request.Context(), appID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Boards.Invalidate(c.Request.Context(), app.JobID)
	response.OK(c, app)
}

func (h *Handler) AddNote(c *gin.Context) {
	appID, ok := uuidParam(c, "application_id")
	if !ok {
		return
	}

	var req model.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	note, err := h.Engine.AddNote(c.Request.Context(), appID, req.AuthorID, req.AuthorName, req.Content)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.Created(c, note)
}

func (h *Handler) AttachCV(c *gin.Context) {
	appID, ok := uuidParam(c, "application_id")
	if !ok {
		return
	}

	var req model.AttachCVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	app, err := h.Engine.AttachCV(c.Request.Context(), appID, req.CVID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.Boards.Invalidate(c.Request.Context(), app.JobID)
	response.OK(c, app)
}

func (h *Handler) GetApplication(c *gin.Context) {
	appID, ok := uuidParam(c, "application_id")
	if !ok {
		return
	}

	app, err := h.Store.GetApplication(c.Request.Context(), appID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if app == nil {
		response.NotFound(c, "application not found")
		return
	}

	slots, err := h.Store.ListSlotsByApplication(c.Request.Context(), appID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, gin.H{"application": app, "slots": slots})
}
