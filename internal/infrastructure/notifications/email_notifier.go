package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"educa_taxista/internal/domain/entities"
	"educa_taxista/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrMissingSendGridAPIKey = errors.New("missing SENDGRID_API_KEY")

// EmailNotifier delivers enrollment messages through SendGrid. The sender
// address must be a verified identity on the SendGrid account.

type EmailNotifier struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier(apiKey string) (*EmailNotifier, error) {
	if apiKey == "" {
		log.Printf("[notify][email] missing SENDGRID_API_KEY")
		return nil, ErrMissingSendGridAPIKey
	}
	return &EmailNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  getenvDefault("EMAIL_FROM_NAME", "Educa Taxista"),
		fromEmail: getenvDefault("EMAIL_FROM_ADDRESS", "no-reply@educataxista.com.br"),
	}, nil
}

func (n *EmailNotifier) DeliverTemporaryPassword(ctx context.Context, e entities.Enrollment, password string) error {
	subject := "Sua matrícula foi recebida"
	plain := fmt.Sprintf(
		"Olá, %s!\n\nSua matrícula foi recebida com sucesso.\n\n"+
			"Sua senha temporária de acesso é: %s\n\n"+
			"Use seu e-mail e essa senha para entrar na plataforma. "+
			"Recomendamos trocá-la no primeiro acesso.\n\n"+
			"O acesso ao curso será liberado após a confirmação do pagamento.",
		e.FullName, password)
	return n.send(ctx, e, subject, plain)
}

func (n *EmailNotifier) NotifyCourseUnlocked(ctx context.Context, e entities.Enrollment) error {
	subject := "Pagamento confirmado — curso liberado"
	plain := fmt.Sprintf(
		"Olá, %s!\n\nRecebemos a confirmação do seu pagamento e o curso já está liberado.\n\n"+
			"Acesse a plataforma com seu e-mail e senha. Bons estudos!",
		e.FullName)
	return n.send(ctx, e, subject, plain)
}

func (n *EmailNotifier) send(ctx context.Context, e entities.Enrollment, subject, plain string) error {
	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail(e.FullName, e.Email)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	resp, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[notify][email] send failed id=%s err=%v", e.ID, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[notify][email] send rejected id=%s status=%d", e.ID, resp.StatusCode)
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	log.Printf("[notify][email] sent id=%s subject=%q", e.ID, subject)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
