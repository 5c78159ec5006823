package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingWhatsAppConfig = errors.New("missing WHATSAPP_API_URL or WHATSAPP_API_TOKEN")

// WhatsAppNotifier delivers enrollment messages through a WhatsApp Business
// API provider (Meta cloud API or a compatible relay). The message goes to
// the phone submitted at registration.

type WhatsAppNotifier struct {
	client *resty.Client
}

var _ interfaces.INotifier = (*WhatsAppNotifier)(nil)

func NewWhatsAppNotifier(apiURL, token string) (*WhatsAppNotifier, error) {
	if apiURL == "" || token == "" {
		log.Printf("[notify][whatsapp] missing WHATSAPP_API_URL or WHATSAPP_API_TOKEN")
		return nil, ErrMissingWhatsAppConfig
	}
	client := resty.New().
		SetBaseURL(apiURL).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)
	return &WhatsAppNotifier{client: client}, nil
}

func (n *WhatsAppNotifier) DeliverTemporaryPassword(ctx context.Context, e entities.Enrollment, password string) error {
	text := fmt.Sprintf(
		"Olá, %s! Sua matrícula foi recebida. Sua senha temporária é: %s — "+
			"use seu e-mail e essa senha para entrar na plataforma.",
		e.FullName, password)
	return n.send(ctx, e, text)
}

func (n *WhatsAppNotifier) NotifyCourseUnlocked(ctx context.Context, e entities.Enrollment) error {
	text := fmt.Sprintf(
		"Olá, %s! Seu pagamento foi confirmado e o curso já está liberado. Bons estudos!",
		e.FullName)
	return n.send(ctx, e, text)
}

func (n *WhatsAppNotifier) send(ctx context.Context, e entities.Enrollment, text string) error {
	if e.PhoneDigits == "" {
		return errors.New("enrollment has no phone number")
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"messaging_product": "whatsapp",
			"to":                e.PhoneDigits,
			"type":              "text",
			"text":              map[string]string{"body": text},
		}).
		Post("/messages")
	if err != nil {
		log.Printf("[notify][whatsapp] send failed id=%s err=%v", e.ID, err)
		return err
	}
	if resp.IsError() {
		log.Printf("[notify][whatsapp] send rejected id=%s status=%d", e.ID, resp.StatusCode())
		return fmt.Errorf("whatsapp api rejected message: status %d", resp.StatusCode())
	}
	log.Printf("[notify][whatsapp] sent id=%s", e.ID)
	return nil
}
