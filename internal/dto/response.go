package dto

// LoginResponse carries the signed admin token.
type LoginResponse struct {
	Token string `json:"token"`
}

// CreatedResponse is returned by create handlers.
type CreatedResponse struct {
	ID uint64 `json:"id"`
}
