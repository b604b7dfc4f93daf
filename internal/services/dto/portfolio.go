package dto

type CreatePortfolioItemRequest struct {
	Title        string `json:"title" validate:"required,min=2"`
	Category     string `json:"category" validate:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl" validate:"required,url"`
	Featured     *int   `json:"featured" validate:"omitempty,oneof=0 1"`
	DisplayOrder *int   `json:"displayOrder" validate:"omitempty,min=0"`
}

type UpdatePortfolioItemRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=2"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,url"`
	Featured     *int    `json:"featured" validate:"omitempty,oneof=0 1"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,min=0"`
}
