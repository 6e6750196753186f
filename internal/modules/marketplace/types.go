package marketplace

// CreateItemDTO is the payload for publishing a marketplace listing.
type CreateItemDTO struct {
	Title       string  `json:"title"        binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Author      string  `json:"author"`
	ContentID   string  `json:"content_id"   binding:"required"`
	ContentKind string  `json:"content_kind" binding:"required"`
}

type purchaseResponse struct {
	Success bool `json:"success"`
}
