package converter

import (
	dto "casino_demo/internal/api/dto/auth"
	"casino_demo/internal/model"
)

func ToUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		IsAdmin:   user.IsAdmin,
		Balance:   user.Balance,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func ToUserResponses(users []model.User) []dto.UserResponse {
	result := make([]dto.UserResponse, len(users))
	for i := range users {
		result[i] = ToUserResponse(&users[i])
	}
	return result
}
