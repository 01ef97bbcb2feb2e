package dto

type RegisterUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterUserResponse struct {
	Message    string `json:"message,omitempty"`
	InsertedID string `json:"insertedId,omitempty"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

type SuspendUserRequest struct {
	SuspendReason string `json:"suspendReason"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	ShowOnHome  bool    `json:"showOnHome"`
}

// UpdateProductRequest carries the patchable subset of product fields.
// Pointers distinguish "absent" from zero values; ID and createdAt are
// deliberately not here.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	ImageURL    *string  `json:"imageUrl"`
	ShowOnHome  *bool    `json:"showOnHome"`
}

type CreateOrderRequest struct {
	ProductID  string  `json:"productId"`
	Email      string  `json:"email"`
	Quantity   int     `json:"quantity"`
	OrderTotal float64 `json:"orderTotal"`
}

type UpdateOrderStatusRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

type CheckoutRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"` // major units
	Quantity    int     `json:"quantity"`
	Email       string  `json:"email"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type ConfirmPaymentRequest struct {
	SessionID string `json:"sessionId"`
}

type AppendTrackingRequest struct {
	Stage    string `json:"stage"`
	Location string `json:"location"`
	Note     string `json:"note"`
}
