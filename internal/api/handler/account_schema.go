package handler

// errorResponse documents the error envelope for swagger; the central error
// handler renders it.
type errorResponse struct {
	Error string `json:"error"`
}

// credentialsRequest is the claims payload for register and login.
type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	Success   string `json:"success"`
	AuthToken string `json:"auth_token"`
}

type loginResponse struct {
	Email     string `json:"email"`
	AuthToken string `json:"auth_token"`
}
