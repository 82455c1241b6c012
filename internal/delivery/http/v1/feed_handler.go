package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedUC domain.FeedUsecase
}

// NewFeedHandler registers the public, unauthenticated read routes.
func NewFeedHandler(public *gin.RouterGroup, feedUC domain.FeedUsecase) {
	handler := &FeedHandler{feedUC: feedUC}

	public.GET("/jobs", handler.Search)
	public.GET("/jobs/:id", handler.Get)
	public.GET("/skills", handler.ListSkills)
}

func (h *FeedHandler) Search(c *gin.Context) {
	filter, err := parseJobFilter(c)
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.feedUC.SearchJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

func (h *FeedHandler) Get(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.feedUC.GetJob(c.Request.Context(), jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

func (h *FeedHandler) ListSkills(c *gin.Context) {
	skills, err := h.feedUC.ListSkillsCatalog(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// parseJobFilter reads the snake_case feed query params. skills is a
// comma-separated list of catalog ids, matched any-of.
func parseJobFilter(c *gin.Context) (domain.JobFilter, error) {
	var filter domain.JobFilter

	if raw := c.Query("pay_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, apperror.BadRequest("pay_min must be a number")
		}
		filter.PayMin = &v
	}
	if raw := c.Query("pay_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, apperror.BadRequest("pay_max must be a number")
		}
		filter.PayMax = &v
	}

	filter.Location = strings.TrimSpace(c.Query("location"))

	if et := c.Query("employment_type"); et != "" {
		if et != domain.EmploymentPerDay && et != domain.EmploymentPerProject {
			return filter, apperror.BadRequest("employment_type must be PER_DAY or PER_PROJECT")
		}
		filter.EmploymentType = et
	}

	if raw := c.Query("skills"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return filter, apperror.BadRequest("skills must be a comma-separated list of skill ids")
			}
			filter.SkillIDs = append(filter.SkillIDs, id)
		}
	}

	filter.Sort = c.Query("sort")

	return filter, nil
}
