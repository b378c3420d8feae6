package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbermatch/internal/httperr"
	"github.com/BruksfildServices01/barbermatch/internal/httpresp"
	"github.com/BruksfildServices01/barbermatch/internal/middleware"
	ucProfile "github.com/BruksfildServices01/barbermatch/internal/usecase/profile"
)

type SubscriptionHandler struct {
	start *ucProfile.StartSubscription
	sync  *ucProfile.SyncSubscription
	log   *zap.Logger
}

func NewSubscriptionHandler(
	start *ucProfile.StartSubscription,
	sync *ucProfile.SyncSubscription,
	log *zap.Logger,
) *SubscriptionHandler {
	return &SubscriptionHandler{start: start, sync: sync, log: log}
}

// mercadoPagoNotification is the webhook body; only the resource id is used
// because the status is always read back from the provider.
type mercadoPagoNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (h *SubscriptionHandler) Start(c *gin.Context) {
	checkout, err := h.start.Execute(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		httperr.FromError(c, err, "failed_to_start_subscription")
		return
	}

	c.JSON(http.StatusCreated, checkout)
}

func (h *SubscriptionHandler) Webhook(c *gin.Context) {
	var n mercadoPagoNotification
	_ = c.ShouldBindJSON(&n)

	id := n.Data.ID
	if id == "" {
		id = c.Query("data.id")
	}
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		httperr.BadRequest(c, "invalid_request", "Missing resource id.")
		return
	}

	err := h.sync.Execute(c.Request.Context(), id)
	switch {
	case err == nil:
	case httperr.IsBusiness(err, "subscription_not_found"):
		h.log.Warn("webhook for unknown subscription", zap.String("subscription_id", id))
	default:
		httperr.FromError(c, err, "failed_to_sync_subscription")
		return
	}

	httpresp.OK(c, gin.H{"received": true})
}
