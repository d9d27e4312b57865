package handlers

import (
	"net/http"

	"jobhub_backend/internal/services"
	"jobhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobSeekerHandler - действия соискателя: отклики, избранное, жалобы
type JobSeekerHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
	favoriteService    services.FavoriteService
	reportService      services.ReportService
}

func NewJobSeekerHandler(
	base *BaseHandler,
	applicationService services.ApplicationService,
	favoriteService services.FavoriteService,
	reportService services.ReportService,
) *JobSeekerHandler {
	return &JobSeekerHandler{
		BaseHandler:        base,
		applicationService: applicationService,
		favoriteService:    favoriteService,
		reportService:      reportService,
	}
}

func (h *JobSeekerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	seeker := rg.Group("/job-seeker")
	{
		seeker.POST("/apply/:job_id", h.Apply)
		seeker.GET("/proposals/:job_id", h.ListProposalsForJob)
		seeker.GET("/my-proposals", h.ListOwnProposals)
		seeker.PUT("/proposals/:id", h.UpdateProposal)
		seeker.DELETE("/proposals/:id", h.DeleteProposal)

		seeker.POST("/favorites/:job_id", h.AddFavorite)
		seeker.DELETE("/favorites/:job_id", h.RemoveFavorite)
		seeker.GET("/favorites", h.ListFavorites)

		seeker.POST("/report/:job_id", h.ReportJob)
		seeker.GET("/reports/:job_id", h.ListReportsForJob)
		seeker.GET("/my-reports", h.ListOwnReports)
	}
}

func (h *JobSeekerHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), actor, c.Param("job_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"application": application})
}

// ListProposalsForJob - отклики по вакансии, доступно владельцу или админу
func (h *JobSeekerHandler) ListProposalsForJob(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListForJob(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *JobSeekerHandler) ListOwnProposals(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	applications, err := h.applicationService.ListOwn(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

func (h *JobSeekerHandler) UpdateProposal(c *gin.Context) {
	var req dto.UpdateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	application, err := h.applicationService.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *JobSeekerHandler) DeleteProposal(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

func (h *JobSeekerHandler) AddFavorite(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	favorite, err := h.favoriteService.Add(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"favorite": favorite})
}

func (h *JobSeekerHandler) RemoveFavorite(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.favoriteService.Remove(c.Request.Context(), actor, c.Param("job_id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed successfully"})
}

func (h *JobSeekerHandler) ListFavorites(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.ListOwn(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *JobSeekerHandler) ReportJob(c *gin.Context) {
	var req dto.CreateReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	report, err := h.reportService.Create(c.Request.Context(), actor, c.Param("job_id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"report": report})
}

func (h *JobSeekerHandler) ListReportsForJob(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	reports, err := h.reportService.ListForJob(c.Request.Context(), actor, c.Param("job_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

func (h *JobSeekerHandler) ListOwnReports(c *gin.Context) {
	actor, ok := h.CurrentUser(c)
	if !ok {
		return
	}

	reports, err := h.reportService.ListOwn(c.Request.Context(), actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
