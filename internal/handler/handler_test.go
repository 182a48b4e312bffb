package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/internal/handler"
	"github.com/anhtu2808/talent-nexus-sub000/internal/pipeline"
	"github.com/anhtu2808/talent-nexus-sub000/internal/store/memory"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	router    *gin.Engine
	store     *memory.Store
	job       model.Job
	candidate model.CandidateProfile
	cv        model.CV
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	job := model.Job{
		JobID:       uuid.New(),
		Title:       "Backend Engineer",
		Skills:      []string{"Go", "PostgreSQL"},
		PostedAt:    time.Now(),
		IsActive:    true,
		RecruiterID: uuid.New(),
	}
	candidate := model.CandidateProfile{
		CandidateID: uuid.New(),
		Name:        "Minh Pham",
		Email:       "minh.pham@example.com",
		Skills:      []string{"Go", "PostgreSQL"},
	}
	cv := model.CV{CVID: uuid.New(), CandidateID: candidate.CandidateID, FileName: "minh.pdf", UploadedAt: time.Now()}
	store.PutJob(job)
	store.PutCandidate(candidate)
	store.PutCV(cv)

	h := &handler.Handler{
		Logger: zap.NewNop(),
		Engine: pipeline.NewEngine(store, nil),
		Store:  store,
	}

	r := gin.New()
	r.POST("/applications", h.CreateApplication)
	r.POST("/applications/:application_id/transition", h.TransitionApplication)
	r.POST("/applications/:application_id/notes", h.AddNote)
	r.POST("/interviews", h.BookInterview)
	r.GET("/jobs/:job_id/board", h.GetBoard)

	return &testEnv{router: r, store: store, job: job, candidate: candidate, cv: cv}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createApplication(t *testing.T) uuid.UUID {
	t.Helper()
	w := e.do(t, http.MethodPost, "/applications", model.CreateApplicationRequest{
		JobID:       e.job.JobID,
		CandidateID: e.candidate.CandidateID,
		CVID:        e.cv.CVID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var envelope struct {
		Data model.Application `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data.ApplicationID
}

func TestCreateApplicationEndpoint(t *testing.T) {
	env := newTestEnv(t)

	appID := env.createApplication(t)
	assert.NotEqual(t, uuid.Nil, appID)

	// re-apply is a conflict
	w := env.do(t, http.MethodPost, "/applications", model.CreateApplicationRequest{
		JobID:       env.job.JobID,
		CandidateID: env.candidate.CandidateID,
		CVID:        env.cv.CVID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_APPLICATION")
}

func TestTransitionEndpointErrorMapping(t *testing.T) {
	env := newTestEnv(t)
	appID := env.createApplication(t)

	// legal move
	w := env.do(t, http.MethodPost, fmt.Sprintf("/applications/%s/transition", appID),
		model.TransitionRequest{Status: model.StatusReviewing})
	assert.Equal(t, http.StatusOK, w.Code)

	// illegal move maps to 409
	w = env.do(t, http.MethodPost, fmt.Sprintf("/applications/%s/transition", appID),
		model.TransitionRequest{Status: model.StatusOffered})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ILLEGAL_TRANSITION")

	// unknown application maps to 404
	w = env.do(t, http.MethodPost, fmt.Sprintf("/applications/%s/transition", uuid.New()),
		model.TransitionRequest{Status: model.StatusReviewing})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// unknown status value maps to 400
	w = env.do(t, http.MethodPost, fmt.Sprintf("/applications/%s/transition", appID),
		model.TransitionRequest{Status: "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookInterviewEndpointConflict(t *testing.T) {
	env := newTestEnv(t)
	appID := env.createApplication(t)
	when := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)

	book := model.BookInterviewRequest{
		ApplicationID: appID,
		CandidateID:   env.candidate.CandidateID,
		JobID:         env.job.JobID,
		RecruiterID:   env.job.RecruiterID,
		ScheduledAt:   when,
	}

	w := env.do(t, http.MethodPost, "/interviews", book)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// second candidate, same recruiter, same time
	other := model.CandidateProfile{CandidateID: uuid.New(), Name: "Linh Tran"}
	otherCV := model.CV{CVID: uuid.New(), CandidateID: other.CandidateID, FileName: "linh.pdf", UploadedAt: time.Now()}
	env.store.PutCandidate(other)
	env.store.PutCV(otherCV)
	w = env.do(t, http.MethodPost, "/applications", model.CreateApplicationRequest{
		JobID:       env.job.JobID,
		CandidateID: other.CandidateID,
		CVID:        otherCV.CVID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var envelope struct {
		Data model.Application `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	book.ApplicationID = envelope.Data.ApplicationID
	book.CandidateID = other.CandidateID
	w = env.do(t, http.MethodPost, "/interviews", book)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "SLOT_CONFLICT")
}

func TestAddNoteEndpointValidation(t *testing.T) {
	env := newTestEnv(t)
	appID := env.createApplication(t)

	w := env.do(t, http.MethodPost, fmt.Sprintf("/applications/%s/notes", appID),
		model.AddNoteRequest{AuthorID: "rec-1", AuthorName: "Recruiter One", Content: "solid experience"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// gin binding rejects the missing content before the engine sees it
	w = env.do(t, http.MethodPost, fmt.Sprintf("/applications/%s/notes", appID),
		map[string]string{"author_id": "rec-1", "author_name": "Recruiter One"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBoardEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.createApplication(t)

	w := env.do(t, http.MethodGet, fmt.Sprintf("/jobs/%s/board", env.job.JobID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data pipeline.Board `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Lanes, 6)
	assert.Equal(t, model.StatusPending, envelope.Data.Lanes[0].Status)
	assert.Len(t, envelope.Data.Lanes[0].Applicants, 1)

	// unknown job maps to 404
	w = env.do(t, http.MethodGet, fmt.Sprintf("/jobs/%s/board", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
