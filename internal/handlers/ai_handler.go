package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/httpresp"
	ucHairstyle "github.com/BruksfildServices01/barbermatch/internal/usecase/hairstyle"
)

type AIHandler struct {
	suggest *ucHairstyle.Suggest
	tryOn   *ucHairstyle.TryOn
}

func NewAIHandler(suggest *ucHairstyle.Suggest, tryOn *ucHairstyle.TryOn) *AIHandler {
	return &AIHandler{suggest: suggest, tryOn: tryOn}
}

type SuggestRequest struct {
	Photo      string `json:"photo" binding:"required"`
	Preference string `json:"preference"`
}

type TryOnRequest struct {
	Photo       string `json:"photo" binding:"required"`
	Instruction string `json:"instruction"`
}

func (h *AIHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	s, err := h.suggest.Execute(c.Request.Context(), req.Photo, req.Preference)
	if err != nil {
		httperr.FromError(c, err, "failed_to_suggest")
		return
	}

	httpresp.OK(c, s)
}

func (h *AIHandler) TryOn(c *gin.Context) {
	var req TryOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	image, err := h.tryOn.Execute(c.Request.Context(), req.Photo, req.Instruction)
	if err != nil {
		httperr.FromError(c, err, "failed_to_try_on")
		return
	}

	httpresp.OK(c, gin.H{"image": image})
}
