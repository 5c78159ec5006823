package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"educa_taxista/internal/domain/validation"
	"educa_taxista/internal/usecase/interfaces"
)

const chatSystemPrompt = "Você é o assistente virtual de uma plataforma de " +
	"formação continuada para taxistas. Responda em português, de forma " +
	"curta e objetiva, apenas sobre matrícula, pagamento PIX e acesso ao curso."

const chatFallbackAnswer = "Não entendi sua pergunta. Posso ajudar com: " +
	"situação da matrícula, pagamento via PIX ou acesso ao curso. " +
	"Se preferir, fale com nosso suporte."

// ChatReply tags how the answer was produced so the client can style it.

type ChatReply struct {
	Answer string `json:"answer"`
	Intent string `json:"intent"`
}

// IChatbotUseCase answers support questions. Keyword intents are resolved
// locally (optionally enriched with the caller's enrollment state); anything
// else goes to the LLM when one is configured, or to a canned fallback.

type IChatbotUseCase interface {
	Chat(ctx context.Context, email, message string) (ChatReply, error)
}

type ChatbotUseCase struct {
	repo interfaces.IEnrollmentRepository
	llm  interfaces.ILLMClient
}

var _ IChatbotUseCase = (*ChatbotUseCase)(nil)

func NewChatbotUseCase(repo interfaces.IEnrollmentRepository, llm interfaces.ILLMClient) *ChatbotUseCase {
	return &ChatbotUseCase{repo: repo, llm: llm}
}

func (u *ChatbotUseCase) Chat(ctx context.Context, email, message string) (ChatReply, error) {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return ChatReply{Answer: "Como posso ajudar?", Intent: "empty"}, nil
	}

	switch {
	case containsAny(msg, "oi", "olá", "ola", "bom dia", "boa tarde", "boa noite"):
		return ChatReply{Answer: "Olá! Sou o assistente da plataforma de formação para taxistas. Posso ajudar com matrícula, pagamento ou acesso ao curso.", Intent: "greeting"}, nil

	case containsAny(msg, "status", "matrícula", "matricula", "inscrição", "inscricao"):
		return u.enrollmentStatusReply(ctx, email), nil

	case containsAny(msg, "pix", "pagamento", "pagar", "boleto"):
		return ChatReply{Answer: "O pagamento do curso é feito via PIX. Após a matrícula, geramos um QR Code e um código copia-e-cola. A liberação do curso é automática assim que o pagamento é confirmado.", Intent: "payment"}, nil

	case containsAny(msg, "curso", "aula", "conteúdo", "conteudo", "certificado"):
		return ChatReply{Answer: "O curso de formação continuada é 100% online, com certificado ao final. O acesso é liberado automaticamente após a confirmação do pagamento.", Intent: "course"}, nil
	}

	return u.llmReply(ctx, message), nil
}

func (u *ChatbotUseCase) enrollmentStatusReply(ctx context.Context, email string) ChatReply {
	email = validation.NormalizeEmail(email)
	if email == "" || u.repo == nil {
		return ChatReply{Answer: "Para consultar sua matrícula, informe o e-mail usado no cadastro.", Intent: "status"}
	}

	e, err := u.repo.GetByEmail(ctx, email)
	if err != nil || e.ID == "" {
		return ChatReply{Answer: "Não encontrei uma matrícula para esse e-mail. Verifique o endereço ou faça seu cadastro.", Intent: "status"}
	}

	if e.HasCourseAccess() {
		return ChatReply{Answer: fmt.Sprintf("%s, seu pagamento está confirmado e o curso já está liberado. Bons estudos!", e.FullName), Intent: "status"}
	}
	return ChatReply{Answer: fmt.Sprintf("%s, sua matrícula está com status %q. O acesso ao curso é liberado após a confirmação do pagamento.", e.FullName, e.Status), Intent: "status"}
}

func (u *ChatbotUseCase) llmReply(ctx context.Context, message string) ChatReply {
	if u.llm == nil {
		return ChatReply{Answer: chatFallbackAnswer, Intent: "fallback"}
	}

	answer, err := u.llm.Complete(ctx, chatSystemPrompt, message)
	if err != nil || strings.TrimSpace(answer) == "" {
		log.Printf("[chatbot][usecase] llm completion failed err=%v", err)
		return ChatReply{Answer: chatFallbackAnswer, Intent: "fallback"}
	}
	return ChatReply{Answer: answer, Intent: "llm"}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
