package domain

// CartItem is a single product line in a cart.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart is the shopping cart for one user. It is stored whole as an opaque
// value; this service only gets, replaces, and deletes it.
type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}
