package dto

type CreateCustomerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type CustomerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
