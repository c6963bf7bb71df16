package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteJSON - функция для успешных ответов
func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// fieldErrors переводит отказ валидатора в карту "поле -> сообщение".
// Невалидная форма отдаётся со статусом 200 вместе с этой картой, как при
// повторном показе формы с ошибками.
func fieldErrors(err error) map[string]string {
	result := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		result["form"] = err.Error()
		return result
	}

	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			result[fe.Field()] = "обязательное поле"
		case "email":
			result[fe.Field()] = "некорректный адрес почты"
		default:
			result[fe.Field()] = "некорректное значение"
		}
	}

	return result
}
