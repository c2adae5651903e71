package handler

// errorResponse is the standard error envelope returned on malformed input.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries a human-readable outcome. Authentication failures
// use this shape so that "no such account" and "wrong password" are
// byte-identical on the wire.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request / Response types ---

type identifyRequest struct {
	Email string `json:"email"`
}

type identifyResponse struct {
	LoginType string `json:"loginType"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userView is the sanitized principal embedded in sign-in and registration
// responses. There is deliberately no field a password digest could travel in.
type userView struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

type signInResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}

type registerRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Phone     string `json:"phone"`
	Address1  string `json:"address1"  validate:"required"`
	Address2  string `json:"address2"`
	City      string `json:"city"      validate:"required"`
	State     string `json:"state"     validate:"required"`
	Zip       string `json:"zip"       validate:"required"`
	// The identifier contract is presence of '@', nothing stricter: inputs
	// like "a@b@work.com" are routable by the resolver and must be
	// registrable too.
	Email    string `json:"email"    validate:"required,contains=@"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}

type statusResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Message  string `json:"message"`
	UserID   string `json:"userId,omitempty"`
	Role     string `json:"role,omitempty"`
	Email    string `json:"email,omitempty"`
}
