package ownerservice

// Owner модель владельца апартамента из OwnerService
type Owner struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от OwnerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
