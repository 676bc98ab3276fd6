package jobs

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skillsenselab/scribekit/errors"
	"github.com/skillsenselab/scribekit/server"
	"github.com/skillsenselab/scribekit/sse"
	"github.com/skillsenselab/scribekit/util"
)

// Handler exposes the jobs API over Gin.
type Handler struct {
	manager *Manager
	hub     *sse.Hub
	dataDir string
}

// NewHandler creates the jobs API handler.
func NewHandler(manager *Manager, hub *sse.Hub, dataDir string) *Handler {
	return &Handler{manager: manager, hub: hub, dataDir: dataDir}
}

// RegisterRoutes mounts the jobs API under /v1. extra middleware (e.g. a
// rate limiter) is applied to the upload route only.
func (h *Handler) RegisterRoutes(r gin.IRouter, uploadMiddleware ...gin.HandlerFunc) {
	v1 := r.Group("/v1")

	create := append([]gin.HandlerFunc{}, uploadMiddleware...)
	create = append(create, h.createTranscript)
	v1.POST("/transcripts", create...)

	v1.GET("/jobs", h.listJobs)
	v1.GET("/jobs/:id", h.getJob)
	v1.GET("/jobs/:id/events", h.streamEvents)
	v1.GET("/jobs/:id/transcript.srt", h.downloadSRT)
	v1.GET("/jobs/:id/transcript.json", h.downloadJSON)
}

type transcriptForm struct {
	Language    string `form:"language"`
	NumSpeakers int    `form:"num_speakers"`
}

// createTranscript accepts a multipart upload and queues a transcription job.
func (h *Handler) createTranscript(c *gin.Context) {
	file, err := c.FormFile("audio")
	if err != nil {
		server.RespondWithError(c, errors.MissingField("audio"))
		return
	}

	var form transcriptForm
	if err := c.ShouldBind(&form); err != nil {
		server.RespondWithError(c, errors.Validation(err.Error()))
		return
	}

	uploadDir := filepath.Join(h.dataDir, "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		server.RespondWithError(c, err)
		return
	}
	uploadPath := filepath.Join(uploadDir, uuid.New().String()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, uploadPath); err != nil {
		server.RespondWithError(c, err)
		return
	}

	job, err := h.manager.Submit(uploadPath, SubmitRequest{
		Filename:    util.SanitizeString(file.Filename),
		Language:    form.Language,
		NumSpeakers: form.NumSpeakers,
	})
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondAccepted(c, job)
}

func (h *Handler) listJobs(c *gin.Context) {
	server.RespondOK(c, h.manager.Store().List())
}

func (h *Handler) getJob(c *gin.Context) {
	job, err := h.manager.Store().Get(c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, job)
}

// streamEvents subscribes the client to a job's SSE stream.
func (h *Handler) streamEvents(c *gin.Context) {
	jobID := c.Param("id")
	if _, err := h.manager.Store().Get(jobID); err != nil {
		server.RespondWithError(c, err)
		return
	}

	clientID := sse.ClientID(jobID, uuid.New().String())
	sse.ServeSSE(h.hub, c.Writer, c.Request, clientID, sse.WithJobID(jobID))
}

func (h *Handler) downloadSRT(c *gin.Context) {
	h.download(c, func(j *Job) string { return j.SRTPath }, "application/x-subrip")
}

func (h *Handler) downloadJSON(c *gin.Context) {
	h.download(c, func(j *Job) string { return j.JSONPath }, "application/json")
}

func (h *Handler) download(c *gin.Context, path func(*Job) string, contentType string) {
	job, err := h.manager.Store().Get(c.Param("id"))
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	if job.Status != StatusCompleted || path(job) == "" {
		server.RespondWithError(c, errors.Validation("transcript is not ready"))
		return
	}

	c.Header("Content-Type", contentType)
	c.File(path(job))
}
