package handler

// --- Request types ---

type userSettingsRequest struct {
	Theme string `json:"theme"`
}

type createUserRequest struct {
	Email    string               `json:"email"    validate:"required"`
	Password string               `json:"password" validate:"required"`
	Role     string               `json:"role"     validate:"required"`
	Username string               `json:"username" validate:"required"`
	Settings *userSettingsRequest `json:"settings"`
}

// updateUserRequest carries a partial update; absent fields stay untouched.
type updateUserRequest struct {
	Email    *string              `json:"email"`
	Password *string              `json:"password"`
	Role     *string              `json:"role"`
	Username *string              `json:"username"`
	Settings *userSettingsRequest `json:"settings"`
}
