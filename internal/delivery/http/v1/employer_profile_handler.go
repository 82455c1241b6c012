package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type EmployerProfileHandler struct {
	profileUC domain.EmployerProfileUsecase
}

func NewEmployerProfileHandler(employer *gin.RouterGroup, profileUC domain.EmployerProfileUsecase) {
	handler := &EmployerProfileHandler{profileUC: profileUC}

	profile := employer.Group("/employer/profile")
	{
		profile.POST("", handler.Create)
		profile.GET("", handler.Get)
		profile.PUT("", handler.Update)
		profile.DELETE("", handler.Delete)
	}
}

type EmployerProfileRequest struct {
	CompanyName        string  `json:"companyName" binding:"required,max=200"`
	CompanyDescription *string `json:"companyDescription"`
	CompanyWebsite     *string `json:"companyWebsite" binding:"omitempty,http_url_opt"`
	ContactInfo        *string `json:"contactInfo"`
}

func (r *EmployerProfileRequest) toDomain() *domain.EmployerProfile {
	return &domain.EmployerProfile{
		CompanyName:        r.CompanyName,
		CompanyDescription: r.CompanyDescription,
		CompanyWebsite:     r.CompanyWebsite,
		ContactInfo:        r.ContactInfo,
	}
}

func (h *EmployerProfileHandler) Create(c *gin.Context) {
	var req EmployerProfileRequest
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

func (h *EmployerProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	profile, err := h.profileUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

func (h *EmployerProfileHandler) Update(c *gin.Context) {
	var req EmployerProfileRequest
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

func (h *EmployerProfileHandler) Delete(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.profileUC.DeleteProfile(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile deleted", nil)
}
