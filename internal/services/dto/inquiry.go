package dto

type CreateInquiryRequest struct {
	FullName    string `json:"fullName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	ProjectType string `json:"projectType" validate:"required"`
	DesiredDate string `json:"desiredDate"`
	Message     string `json:"message" validate:"required,min=10"`
}

type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted converted closed"`
}
