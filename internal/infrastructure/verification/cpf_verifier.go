package verification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"educa_taxista/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingVerifierConfig = errors.New("missing CPF_VERIFIER_URL")

// CPFVerifier consults an external CPF validation service. It is strictly
// advisory: callers treat ErrVerifierUnavailable (and any other error) as
// "service down" and fall back to the local checksum.

type CPFVerifier struct {
	client *resty.Client
}

var _ interfaces.ITaxIDVerifier = (*CPFVerifier)(nil)

func NewCPFVerifier(baseURL, token string) (*CPFVerifier, error) {
	if baseURL == "" {
		log.Printf("[verify][cpf] missing CPF_VERIFIER_URL")
		return nil, ErrMissingVerifierConfig
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(3 * time.Second)
	if token != "" {
		client.SetAuthToken(token)
	}
	return &CPFVerifier{client: client}, nil
}

type verifierResponse struct {
	Valid bool `json:"valid"`
}

func (v *CPFVerifier) Verify(ctx context.Context, taxID string) (bool, error) {
	var out verifierResponse
	resp, err := v.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/cpf/" + taxID)
	if err != nil {
		log.Printf("[verify][cpf] request failed err=%v", err)
		return false, fmt.Errorf("%w: %v", interfaces.ErrVerifierUnavailable, err)
	}
	if resp.IsError() {
		if resp.StatusCode() >= 500 {
			return false, fmt.Errorf("%w: status %d", interfaces.ErrVerifierUnavailable, resp.StatusCode())
		}
		// 4xx is a definitive answer from the service, not an outage.
		return false, nil
	}
	return out.Valid, nil
}
