package handlers

import (
	"net/http"

	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobHandler - CRUD по вакансиям
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.POST("", h.Create)
		jobs.GET("/all", h.ListAll)
		jobs.GET("", h.ListOwn)
		jobs.GET("/:id", h.GetByID)
		jobs.PUT("/:id", h.Update)
		jobs.DELETE("/:id", h.Delete)
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *JobHandler) ListAll(c *gin.Context) {
	jobs, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// ListOwn - вакансии текущего пользователя
func (h *JobHandler) ListOwn(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListOwn(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *JobHandler) Delete(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
