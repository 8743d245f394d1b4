package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, admin *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - no authentication required
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.List)
		publicJobs.GET("/:id", handler.GetDetails)
	}

	// ADMIN routes - authentication plus admin role
	adminJobs := admin.Group("/jobs")
	{
		adminJobs.POST("", handler.Create)
		adminJobs.PATCH("/:id", handler.Update)
		adminJobs.DELETE("/:id", handler.Delete)
	}
}

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=MERN MEAN PHP Frontend Backend Python Other"`
	Description string `json:"description" binding:"required"`
	Experience  string `json:"experience" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,oneof=MERN MEAN PHP Frontend Backend Python Other"`
	Description *string `json:"description"`
	Experience  *string `json:"experience"`
	Company     *string `json:"company"`
	Location    *string `json:"location"`
	Salary      *string `json:"salary"`
	IsActive    *bool   `json:"is_active"`
}

// Create godoc
// @Summary      Create a new job
// @Description  Create a new job posting (admin only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &domain.Job{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Experience:  req.Experience,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		IsActive:    isActive,
	}

	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List jobs
// @Description  Get a page of jobs, optionally filtered by category
// @Tags         jobs
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        page      query     int     false  "Page number"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	// Only the allow-listed filter fields reach the store; an unknown
	// category value just produces an empty page
	filter := domain.JobFilter{
		Category: c.Query("category"),
	}

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), filter, page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job list", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Partially update a job posting. Only the creator can update it.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int               true  "Job ID"
// @Param        job  body      UpdateJobRequest  true  "Fields to update"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	upd := &domain.JobUpdate{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Experience:  req.Experience,
		Company:     req.Company,
		Location:    req.Location,
		Salary:      req.Salary,
		IsActive:    req.IsActive,
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), userID, id, upd)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting. Only the creator can delete it.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))

	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
