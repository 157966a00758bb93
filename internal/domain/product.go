package domain

// Product mirrors the remote catalog API's product document. Products are
// read-only on this side: decoded from the API, never mutated locally.
// Nothing beyond the fields below may be assumed of the upstream schema.
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
}

// DiscountedPrice applies the upstream discount percentage to the base price.
func (p Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}
