package model

// User is the user record returned by the user-management service on login.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest is the POST /users/login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer credential and the user record.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// OrganizationDetails names the organization created during signup.
type OrganizationDetails struct {
	Name string `json:"name"`
}

// RegisterRequest is the POST /users/register payload.
type RegisterRequest struct {
	Email               string              `json:"email"`
	Password            string              `json:"password"`
	Username            string              `json:"username"`
	Role                string              `json:"role"`
	CreateOrg           bool                `json:"create_org"`
	OrganizationDetails OrganizationDetails `json:"organization_details"`
}
