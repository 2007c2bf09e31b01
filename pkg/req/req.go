package req

import (
	"encoding/json"
	"io"
)

// Decode - типизированное чтение JSON тела запроса
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, err
	}
	return payload, nil
}
