package dto

type CreateInvoiceRequest struct {
	ClientName         string  `json:"clientName" validate:"required,min=2"`
	ClientEmail        string  `json:"clientEmail" validate:"required,email"`
	ServiceDescription string  `json:"serviceDescription" validate:"required,min=10"`
	Amount             float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=draft sent paid void"`
}
