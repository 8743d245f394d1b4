package v1

import (
	"io"
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC  domain.ApplicationUsecase
	store          *storage.LocalStore
	maxUploadBytes int64
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, applicationUC domain.ApplicationUsecase, store *storage.LocalStore, maxUploadMB int) {
	handler := &ApplicationHandler{
		applicationUC:  applicationUC,
		store:          store,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}

	applications := protected.Group("/applications")
	{
		applications.GET("/my-applications", handler.ListMine)
		applications.POST("/:jobId", handler.Submit)
	}

	adminApplications := admin.Group("/applications")
	{
		adminApplications.GET("/job/:jobId", handler.ListForJob)
		adminApplications.PATCH("/:id/status", handler.SetStatus)
	}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Submit godoc
// @Summary      Apply to a job
// @Description  Submit an application with a resume file (multipart form: description, resume)
// @Tags         applications
// @Accept       multipart/form-data
// @Produce      json
// @Param        jobId        path      int     true  "Job ID"
// @Param        description  formData  string  true  "About the applicant"
// @Param        resume       formData  file    true  "Resume document"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{jobId} [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applicantID := c.GetString(string(domain.KeyUserID))
	description := c.PostForm("description")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("Please upload your resume"))
		return
	}
	if fileHeader.Size > h.maxUploadBytes {
		c.Error(apperror.BadRequest("Resume file is too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	if int64(len(data)) > h.maxUploadBytes {
		c.Error(apperror.BadRequest("Resume file is too large"))
		return
	}

	result := security.ValidateResume(fileHeader.Filename, data, http.DetectContentType(data))
	if !result.Valid {
		c.Error(apperror.BadRequest("Resume rejected: " + result.Error))
		return
	}

	// The artifact must be durably stored before the application row that
	// references it is inserted
	storedName, err := h.store.Save(fileHeader.Filename, data)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), applicantID, jobID, description, storedName)
	if err != nil {
		// No application row references the artifact, so drop it rather
		// than leaving an orphan on disk
		if rmErr := h.store.Remove(storedName); rmErr != nil {
			logger.Log.Warn("Failed to remove orphaned resume", "file", storedName, "error", rmErr)
		}
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}

// ListMine godoc
// @Summary      Get my applications
// @Description  Get all applications submitted by the current user
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /applications/my-applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applicantID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListMine(c.Request.Context(), applicantID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListForJob godoc
// @Summary      List applications for a job
// @Description  Get all applications for a specific job (admin only)
// @Tags         applications
// @Produce      json
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /applications/job/{jobId} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	applications, err := h.applicationUC.ListForJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// SetStatus godoc
// @Summary      Update application status
// @Description  Overwrite an application's status (admin only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "Application ID"
// @Param        body  body      SetStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
