package api

type CreateUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	UserID int64 `json:"user_id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []User `json:"users"`
}

type UpdateProfileRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type UpdateProfileResponse struct {
	User User `json:"user"`
}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings Settings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Currency string `json:"currency"`
}

type UpdateSettingsResponse struct {
	Settings Settings `json:"settings"`
}
