package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"

	"github.com/awaleed99/bite-back0/internal/models"
)

// MercadoPagoGateway charges card tokens issued by Mercado Pago's client-side
// tokenization.
type MercadoPagoGateway struct {
	client mppayment.Client
	logger *slog.Logger
}

func NewMercadoPagoGateway(accessToken string, logger *slog.Logger) (*MercadoPagoGateway, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &MercadoPagoGateway{
		client: mppayment.NewClient(cfg),
		logger: logger,
	}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	amount, _ := req.Amount.Float64()

	res, err := g.client.Create(ctx, mppayment.Request{
		TransactionAmount: amount,
		Token:             req.Method.CardToken,
		PaymentMethodID:   mercadoPagoMethodID(req.Method.CardBrand),
		Installments:      1,
		Description:       "Bite Back order " + req.OrderNumber,
		ExternalReference: req.OrderID.String(),
		Payer: &mppayment.PayerRequest{
			Email: req.PayerEmail,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("mercadopago create payment: %w", err)
	}

	status := mapMercadoPagoStatus(res.Status)
	g.logger.InfoContext(ctx, "mercadopago payment processed",
		"order_number", req.OrderNumber,
		"payment_id", res.ID,
		"status", res.Status,
	)

	return &ChargeResult{
		Reference: strconv.Itoa(res.ID),
		Status:    status,
		Gateway:   "mercadopago",
	}, nil
}

func mapMercadoPagoStatus(s string) models.PaymentStatus {
	switch s {
	case "approved", "authorized":
		return models.PaymentStatusPaid
	case "refunded", "charged_back":
		return models.PaymentStatusRefunded
	case "pending", "in_process", "in_mediation":
		return models.PaymentStatusPending
	default:
		return models.PaymentStatusFailed
	}
}

func mercadoPagoMethodID(brand string) string {
	switch brand {
	case "Mastercard":
		return "master"
	default:
		return strings.ToLower(brand)
	}
}
