package handlers

import (
	"net/http"

	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler - модерация: жалобы и блокировка вакансий
type AdminHandler struct {
	*BaseHandler
	jobService    services.JobService
	reportService services.ReportService
}

func NewAdminHandler(base *BaseHandler, jobService services.JobService, reportService services.ReportService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		jobService:    jobService,
		reportService: reportService,
	}
}

// RegisterRoutes - группа уже защищена AdminMiddleware
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	{
		admin.GET("/reports/pending", h.ListPendingReports)
		admin.PUT("/reports/:id/resolve", h.ResolveReport)
		admin.PUT("/jobs/:id/block", h.BlockJob)
		admin.PUT("/jobs/:id/unblock", h.UnblockJob)
	}
}

func (h *AdminHandler) ListPendingReports(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	reports, err := h.reportService.ListPending(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *AdminHandler) ResolveReport(c *gin.Context) {
	var req dto.ResolveReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	report, err := h.reportService.Resolve(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

func (h *AdminHandler) BlockJob(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	job, err := h.jobService.Block(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *AdminHandler) UnblockJob(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	job, err := h.jobService.Unblock(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}
