package response

import "educa_taxista/internal/usecase"

// PaymentSessionResponse carries everything the client needs to render the
// PIX checkout: charge metadata plus the copy-paste code and QR image.

type PaymentSessionResponse struct {
	EnrollmentID string  `json:"enrollment_id"`
	ChargeID     string  `json:"charge_id"`
	Amount       float64 `json:"amount"`
	BillingType  string  `json:"billing_type"`
	Status       string  `json:"status"`
	DueDate      string  `json:"due_date,omitempty"`
	InvoiceURL   string  `json:"invoice_url,omitempty"`
	PixPayload   string  `json:"pix_payload"`
	PixQRCode    string  `json:"pix_qr_code,omitempty"`
}

func FromPaymentSession(s usecase.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		EnrollmentID: s.Enrollment.ID,
		ChargeID:     s.Enrollment.ChargeID,
		Amount:       s.Record.Amount,
		BillingType:  s.Record.BillingType,
		Status:       string(s.Record.Status),
		DueDate:      s.Record.DueDate,
		InvoiceURL:   s.Record.InvoiceURL,
		PixPayload:   s.Pix.Payload,
		PixQRCode:    s.Pix.EncodedImage,
	}
}
