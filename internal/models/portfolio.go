package models

// PortfolioItem is a published photograph. Category is a free-form label
// ("Weddings", "Portraits", ...); Featured is 0/1 so it round-trips through
// forms unchanged; DisplayOrder is the explicit sort key.
type PortfolioItem struct {
	BaseModel
	Title        string `gorm:"not null" json:"title"`
	Category     string `gorm:"not null;index" json:"category"`
	Description  string `gorm:"not null" json:"description"`
	ImageURL     string `gorm:"not null" json:"imageUrl"`
	Featured     int    `gorm:"not null;default:0" json:"featured"`
	DisplayOrder int    `gorm:"not null;default:0" json:"displayOrder"`
}
