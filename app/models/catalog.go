package models

// Service is a priced salon service offered at the cashier screen
type Service struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"not null;unique" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
}

// Product is an inventory item. Quantity is decremented on sale and
// incremented on restock; it may go negative when sales outrun restocks.
type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null;unique" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Quantity int     `gorm:"default:0" json:"quantity"`
}
