package model

import "time"

const (
	RolePlayer = "player"
	RoleAdmin  = "administrator"
)

// Стартовый баланс нового игрока
const StartBalance = 1000

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"` // Открытым текстом, хэширование вне скоупа демо
	IsAdmin   bool      `json:"isAdmin"`
	Balance   int       `json:"balance"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserPatch - частичное обновление полей пользователя.
// nil-поля не трогаются (shallow merge)
type UserPatch struct {
	Username *string
	Password *string
	Role     *string
	IsAdmin  *bool
}
