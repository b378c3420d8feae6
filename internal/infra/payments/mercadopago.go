package payments

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preapproval"

	appconfig "github.com/BruksfildServices01/barbermatch/internal/config"
	"github.com/BruksfildServices01/barbermatch/internal/domain/profile"
)

type preapprovalAPI interface {
	Create(ctx context.Context, request preapproval.Request) (*preapproval.Response, error)
	Get(ctx context.Context, id string) (*preapproval.Response, error)
}

// MercadoPago bills directory listings as monthly preapprovals.
type MercadoPago struct {
	client   preapprovalAPI
	price    float64
	currency string
	backURL  string
}

var _ profile.Billing = (*MercadoPago)(nil)

func NewMercadoPago(cfg *appconfig.Config) (*MercadoPago, error) {
	mpCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}

	return &MercadoPago{
		client:   preapproval.NewClient(mpCfg),
		price:    cfg.SubscriptionPrice,
		currency: cfg.SubscriptionCurrency,
		backURL:  cfg.SubscriptionBackURL,
	}, nil
}

func (m *MercadoPago) StartSubscription(ctx context.Context, req profile.SubscriptionRequest) (*profile.Checkout, error) {
	resp, err := m.client.Create(ctx, preapproval.Request{
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         1,
			FrequencyType:     "months",
			TransactionAmount: m.price,
			CurrencyID:        m.currency,
		},
		BackURL:           m.backURL,
		PayerEmail:        req.Email,
		Reason:            req.Reason,
		ExternalReference: req.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("create preapproval: %w", err)
	}

	return &profile.Checkout{
		SubscriptionID: resp.ID,
		URL:            resp.InitPoint,
		Status:         resp.Status,
	}, nil
}

func (m *MercadoPago) SubscriptionStatus(ctx context.Context, subscriptionID string) (string, error) {
	resp, err := m.client.Get(ctx, subscriptionID)
	if err != nil {
		return "", fmt.Errorf("get preapproval: %w", err)
	}
	return resp.Status, nil
}
