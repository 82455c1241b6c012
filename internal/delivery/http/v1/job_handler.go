package v1

import (
	"net/http"
	"strconv"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(employer *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := employer.Group("/employer/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.ListMine)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.GET("/:id/applicants", handler.ListApplicants)
	}
}

type JobRequest struct {
	Title          string  `json:"title" binding:"required,max=255"`
	Description    string  `json:"description" binding:"required"`
	Pay            float64 `json:"pay" binding:"required,gt=0"`
	EmploymentType string  `json:"employmentType" binding:"required,oneof=PER_DAY PER_PROJECT"`
	Location       string  `json:"location" binding:"required,max=255"`
	Duration       *string `json:"duration"`
	// Empty status on update means "leave the stored status alone".
	Status         string  `json:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	RequiredSkills []int64 `json:"requiredSkills"`
}

func (r *JobRequest) toDomain() *domain.Job {
	job := &domain.Job{
		Title:          r.Title,
		Description:    r.Description,
		Pay:            r.Pay,
		EmploymentType: r.EmploymentType,
		Location:       r.Location,
		Duration:       r.Duration,
		Status:         r.Status,
	}
	for _, id := range r.RequiredSkills {
		job.RequiredSkills = append(job.RequiredSkills, domain.JobSkill{SkillID: id})
	}
	return job
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()
	if err := h.jobUC.CreateJob(c.Request.Context(), userID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	jobs, err := h.jobUC.ListMyJobs(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

func (h *JobHandler) Update(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	job := req.toDomain()
	if err := h.jobUC.UpdateJob(c.Request.Context(), userID, jobID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	if err := h.jobUC.DeleteJob(c.Request.Context(), userID, jobID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

func (h *JobHandler) ListApplicants(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	applicants, err := h.jobUC.ListApplicantsForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants retrieved", applicants)
}
