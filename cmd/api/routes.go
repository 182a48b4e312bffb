package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (app *application) routes() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	// simple logger middleware that uses zap
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		app.Logger.Sugar().Infow("http", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "duration", time.Since(start))
	})

	r.Use(app.CORSMiddleware())
	if app.Config.Limiter.Enabled {
		r.Use(app.RateLimitMiddleware())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// job routes
		v1.GET("/jobs", app.Handler.ListJobs)
		v1.GET("/jobs/:job_id", app.Handler.GetJob)
		v1.PATCH("/jobs/:job_id", app.Handler.PatchJob)
		v1.POST("/jobs/:job_id/view", app.Handler.RecordJobView)
		v1.POST("/jobs/:job_id/click", app.Handler.RecordJobClick)
		v1.GET("/jobs/:job_id/applications", app.Handler.ListApplicants)
		v1.GET("/jobs/:job_id/board", app.Handler.GetBoard)

		// candidate routes
		v1.GET("/candidates/:candidate_id", app.Handler.GetCandidate)
		v1.GET("/candidates/:candidate_id/cvs", app.Handler.ListCandidateCVs)

		// application routes
		v1.POST("/applications", app.Handler.CreateApplication)
		v1.GET("/applications/:application_id", app.Handler.GetApplication)
		v1.POST("/applications/:application_id/transition", app.Handler.TransitionApplication)
		v1.POST("/applications/:application_id/reopen", app.Handler.ReopenApplication)
		v1.POST("/applications/:application_id/notes", app.Handler.AddNote)
		v1.PUT("/applications/:application_id/cv", app.Handler.AttachCV)

		// interview booking
		v1.POST("/interviews", app.Handler.BookInterview)
	}

	return r
}
