package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")
var ErrAsaasGatewayNotConfigured = errors.New("asaas gateway not configured")

const defaultAsaasBaseURL = "https://api.asaas.com/v3"

// AsaasGateway talks to the Asaas REST API for customer, charge and PIX
// payload operations. There is no official Go SDK, so the calls go through a
// shared resty client carrying the access_token header.

type AsaasGateway struct {
	client   *resty.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*AsaasGateway)(nil)

func NewAsaasGateway(apiKey string) (*AsaasGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &AsaasGateway{mockMode: true}, nil
	}

	if apiKey == "" {
		log.Printf("[payment][gateway] missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}

	client := resty.New().
		SetBaseURL(getenvDefault("ASAAS_BASE_URL", defaultAsaasBaseURL)).
		SetHeader("access_token", apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	log.Printf("[payment][gateway] Asaas client initialized")

	return &AsaasGateway{client: client}, nil
}

type asaasErrorBody struct {
	Errors []struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"errors"`
}

func (b asaasErrorBody) message() string {
	if len(b.Errors) == 0 {
		return ""
	}
	return b.Errors[0].Description
}

type asaasCustomerResponse struct {
	ID string `json:"id"`
}

func (g *AsaasGateway) CreateCustomer(ctx context.Context, name, email, taxID, phone string) (string, error) {
	if g != nil && g.mockMode {
		id := "cus_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock customer created customer_id=%s", id)
		return id, nil
	}
	if g == nil || g.client == nil {
		return "", ErrAsaasGatewayNotConfigured
	}

	var out asaasCustomerResponse
	var apiErr asaasErrorBody
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"name":        name,
			"email":       email,
			"cpfCnpj":     taxID,
			"mobilePhone": phone,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/customers")
	if err != nil {
		log.Printf("[payment][gateway] customer request failed err=%v", err)
		return "", err
	}
	if resp.IsError() {
		log.Printf("[payment][gateway] customer creation rejected status=%d msg=%q", resp.StatusCode(), apiErr.message())
		return "", fmt.Errorf("asaas customer creation failed: status %d: %s", resp.StatusCode(), apiErr.message())
	}
	log.Printf("[payment][gateway] customer created customer_id=%s", out.ID)
	return out.ID, nil
}

type asaasChargeResponse struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	DueDate    string `json:"dueDate"`
	InvoiceURL string `json:"invoiceUrl"`
}

func (g *AsaasGateway) CreateCharge(ctx context.Context, req interfaces.ChargeRequest) (entities.Charge, error) {
	if g != nil && g.mockMode {
		charge := entities.Charge{
			ID:      "pay_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10),
			Status:  "PENDING",
			DueDate: time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
		}
		log.Printf("[payment][gateway] mock charge created charge_id=%s", charge.ID)
		return charge, nil
	}
	if g == nil || g.client == nil {
		return entities.Charge{}, ErrAsaasGatewayNotConfigured
	}

	var out asaasChargeResponse
	var apiErr asaasErrorBody
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"customer":          req.CustomerID,
			"billingType":       "PIX",
			"value":             req.Amount,
			"dueDate":           time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
			"description":       req.Description,
			"externalReference": req.Reference,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/payments")
	if err != nil {
		log.Printf("[payment][gateway] charge request failed err=%v", err)
		return entities.Charge{}, err
	}
	if resp.IsError() {
		log.Printf("[payment][gateway] charge creation rejected status=%d msg=%q", resp.StatusCode(), apiErr.message())
		return entities.Charge{}, fmt.Errorf("asaas charge creation failed: status %d: %s", resp.StatusCode(), apiErr.message())
	}
	log.Printf("[payment][gateway] charge created charge_id=%s status=%s", out.ID, out.Status)
	return entities.Charge{ID: out.ID, Status: out.Status, DueDate: out.DueDate, InvoiceURL: out.InvoiceURL}, nil
}

type asaasPixResponse struct {
	Payload      string `json:"payload"`
	EncodedImage string `json:"encodedImage"`
}

func (g *AsaasGateway) GetPixPayload(ctx context.Context, chargeID string) (entities.PixPayload, error) {
	if g != nil && g.mockMode {
		return entities.PixPayload{
			Payload:      "00020126580014br.gov.bcb.pix0136mock-" + chargeID,
			EncodedImage: "",
		}, nil
	}
	if g == nil || g.client == nil {
		return entities.PixPayload{}, ErrAsaasGatewayNotConfigured
	}

	var out asaasPixResponse
	var apiErr asaasErrorBody
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&out).
		SetError(&apiErr).
		Get("/payments/" + chargeID + "/pixQrCode")
	if err != nil {
		log.Printf("[payment][gateway] pix payload request failed charge_id=%s err=%v", chargeID, err)
		return entities.PixPayload{}, err
	}
	if resp.IsError() {
		log.Printf("[payment][gateway] pix payload rejected charge_id=%s status=%d", chargeID, resp.StatusCode())
		return entities.PixPayload{}, fmt.Errorf("asaas pix payload failed: status %d: %s", resp.StatusCode(), apiErr.message())
	}
	return entities.PixPayload{Payload: out.Payload, EncodedImage: out.EncodedImage}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "ASAAS_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
