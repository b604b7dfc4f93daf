package models

// ContactInquiry is a public contact-form submission or an authenticated
// client project request. DesiredDate is free text as typed by the visitor.
type ContactInquiry struct {
	BaseModel
	FullName    string        `gorm:"not null" json:"fullName"`
	Email       string        `gorm:"not null;index" json:"email"`
	ProjectType string        `gorm:"not null" json:"projectType"`
	DesiredDate string        `gorm:"not null" json:"desiredDate"`
	Message     string        `gorm:"not null" json:"message"`
	Status      InquiryStatus `gorm:"type:varchar(20);not null;default:'new'" json:"status"`
}
