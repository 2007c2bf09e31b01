package model

import "encoding/json"

// StoreState - полное состояние хранилища под одним ключом.
// Формат блоба совместим с клиентским демо: users, currentUser,
// transactions и зарезервированный gameStates
type StoreState struct {
	Users        []User            `json:"users"`
	CurrentUser  *User             `json:"currentUser"`
	Transactions []Transaction     `json:"transactions"`
	GameStates   map[string]json.RawMessage `json:"gameStates"`
}
