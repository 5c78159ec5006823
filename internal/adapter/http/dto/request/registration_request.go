package request

import "educa_taxista/internal/usecase"

// RegistrationRequest is the public registration payload. Optional fields
// (plate, license, city) may be omitted; consent must be explicitly true.

type RegistrationRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	CPF      string `json:"cpf" binding:"required"`
	Plate    string `json:"plate"`
	License  string `json:"license"`
	City     string `json:"city"`
	Consent  bool   `json:"consent"`
}

func (r RegistrationRequest) ToInput() usecase.RegistrationInput {
	return usecase.RegistrationInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		TaxID:    r.CPF,
		Plate:    r.Plate,
		License:  r.License,
		City:     r.City,
		Consent:  r.Consent,
	}
}
