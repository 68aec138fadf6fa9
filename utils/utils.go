package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"golang.org/x/crypto/bcrypt"
)

// SendJSONResponse sends a JSON response with the given status code and data
func SendJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// HandleError standardizes error handling by sending a JSON error response
func HandleError(w http.ResponseWriter, status int, message string) {
	SendJSONResponse(w, status, map[string]interface{}{
		"error":  message,
		"status": status,
	})
}

// HashPassword hashes a plaintext password using bcrypt
func HashPassword(password string) (string, error) {
	hashPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashPassword), nil
}

func CheckPassword(hashedPassword, plainPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
}

func ErrorWithTrace(err error, errMesssage string) error {
	if err != nil {
		// Skip 1 level to get the caller of this function
		_, file, line, _ := runtime.Caller(1)
		return fmt.Errorf("%s:%d: %v %s", file, line, err, errMesssage)
	}
	return nil
}
