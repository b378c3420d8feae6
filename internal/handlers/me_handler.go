package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/httpresp"
	"github.com/BruksfildServices01/barbermatch/internal/middleware"
	"github.com/BruksfildServices01/barbermatch/internal/models"
	ucProfile "github.com/BruksfildServices01/barbermatch/internal/usecase/profile"
)

type MeHandler struct {
	users  profile.Repository
	update *ucProfile.UpdateProfile
	photo  *ucProfile.UploadPhoto
}

func NewMeHandler(
	users profile.Repository,
	update *ucProfile.UpdateProfile,
	photo *ucProfile.UploadPhoto,
) *MeHandler {
	return &MeHandler{users: users, update: update, photo: photo}
}

type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`

	Bio               *string                `json:"bio"`
	Specialties       []string               `json:"specialties"`
	YearsOfExperience *int                   `json:"years_of_experience"`
	Availability      *string                `json:"availability"`
	Services          []models.BarberService `json:"services"`
}

type UploadPhotoRequest struct {
	Photo string `json:"photo" binding:"required"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		httperr.FromError(c, err, "failed_to_load_profile")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	user, err := h.update.Execute(c.Request.Context(), ucProfile.UpdateProfileInput{
		UserID:            c.GetString(middleware.ContextUserID),
		Name:              req.Name,
		Phone:             req.Phone,
		Bio:               req.Bio,
		Specialties:       req.Specialties,
		YearsOfExperience: req.YearsOfExperience,
		Availability:      req.Availability,
		Services:          req.Services,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_profile")
		return
	}

	httpresp.OK(c, user)
}

func (h *MeHandler) UploadPhoto(c *gin.Context) {
	var req UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	user, err := h.photo.Execute(c.Request.Context(), c.GetString(middleware.ContextUserID), req.Photo)
	if err != nil {
		httperr.FromError(c, err, "failed_to_upload_photo")
		return
	}

	httpresp.OK(c, user)
}
