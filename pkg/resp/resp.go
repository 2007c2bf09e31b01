package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse - запись ответа с кодом и JSON телом
func WriteJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}
