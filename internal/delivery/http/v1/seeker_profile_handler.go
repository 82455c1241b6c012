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

type SeekerProfileHandler struct {
	profileUC domain.SeekerProfileUsecase
}

// NewSeekerProfileHandler registers the seeker's own profile routes.
func NewSeekerProfileHandler(seeker *gin.RouterGroup, profileUC domain.SeekerProfileUsecase) {
	handler := &SeekerProfileHandler{profileUC: profileUC}

	profile := seeker.Group("/applicant/profile")
	{
		profile.POST("", handler.Create)
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.DELETE("", handler.Delete)
	}
}

// NewApplicantHandler registers the employer-facing applicant detail route.
func NewApplicantHandler(employer *gin.RouterGroup, profileUC domain.SeekerProfileUsecase) {
	handler := &SeekerProfileHandler{profileUC: profileUC}

	employer.GET("/applicants/:id", handler.GetByID)
}

type ProfileSkillRequest struct {
	SkillID        int64   `json:"skillId" binding:"required"`
	CertificateURL *string `json:"certificateUrl" binding:"omitempty,http_url_opt"`
}

type EmploymentEntryRequest struct {
	CompanyName string  `json:"companyName" binding:"required,max=255"`
	Duration    string  `json:"duration" binding:"required,max=100"`
	Description *string `json:"description"`
}

type ReferenceRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Contact     string  `json:"contact" binding:"required,max=255"`
	Description *string `json:"description"`
}

type SeekerProfileRequest struct {
	Name              string                   `json:"name" binding:"required,max=255"`
	Address           *string                  `json:"address"`
	Phone             *string                  `json:"phone" binding:"omitempty,valid_phone"`
	Education         *string                  `json:"education"`
	Skills            []ProfileSkillRequest    `json:"skills" binding:"omitempty,dive"`
	EmploymentHistory []EmploymentEntryRequest `json:"employmentHistory" binding:"omitempty,dive"`
	References        []ReferenceRequest       `json:"references" binding:"omitempty,dive"`
}

func (r *SeekerProfileRequest) toDomain() *domain.SeekerProfile {
	profile := &domain.SeekerProfile{
		Name:      r.Name,
		Address:   r.Address,
		Phone:     r.Phone,
		Education: r.Education,
	}
	for _, s := range r.Skills {
		profile.Skills = append(profile.Skills, domain.ProfileSkill{
			SkillID:        s.SkillID,
			CertificateURL: s.CertificateURL,
		})
	}
	for _, e := range r.EmploymentHistory {
		profile.EmploymentHistory = append(profile.EmploymentHistory, domain.EmploymentEntry{
			CompanyName: e.CompanyName,
			Duration:    e.Duration,
			Description: e.Description,
		})
	}
	for _, ref := range r.References {
		profile.References = append(profile.References, domain.Reference{
			Name:        ref.Name,
			Contact:     ref.Contact,
			Description: ref.Description,
		})
	}
	return profile
}

func (h *SeekerProfileHandler) Create(c *gin.Context) {
	var req SeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile := req.toDomain()
	if err := h.profileUC.CreateProfile(c.Request.Context(), userID, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Profile created", profile)
}

func (h *SeekerProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

func (h *SeekerProfileHandler) Update(c *gin.Context) {
	var req SeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation("Validation failed", validation.FormatValidationErrors(err)))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	profile := req.toDomain()
	if err := h.profileUC.UpdateProfile(c.Request.Context(), userID, profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *SeekerProfileHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.profileUC.DeleteProfile(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", nil)
}

// GetByID serves the employer-facing applicant detail view.
func (h *SeekerProfileHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid applicant id"))
		return
	}

	profile, err := h.profileUC.GetProfileByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant retrieved", profile)
}
