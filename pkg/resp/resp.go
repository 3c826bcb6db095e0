package resp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSONResponse Пишет статус и тело в JSON. Ошибку кодирования возвращает вызывающему.
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
