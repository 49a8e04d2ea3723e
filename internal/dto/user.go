package dto

import (
	"time"

	"github.com/bilalcinal/WhereDoUSpend/internal/core/domain"
)

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers distinguish omitted fields from zero-value ones.
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain User to a UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
