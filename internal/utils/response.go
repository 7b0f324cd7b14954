package utils

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// APIResponse is the body every endpoint returns on plain
// success or failure.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RespondWithJSON writes payload as JSON with the given status.
func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError writes a {success:false, message} body. The public message
// is all the caller sees; the optional dev error is logged for operators.
func RespondError(w http.ResponseWriter, status int, publicMessage string, devErrs ...error) {
	RespondWithJSON(w, status, APIResponse{Success: false, Message: publicMessage})

	if len(devErrs) > 0 && devErrs[0] != nil {
		Logger.WithFields(logrus.Fields{
			"status": status,
			"error":  devErrs[0].Error(),
		}).Error(publicMessage)
	} else {
		Logger.WithFields(logrus.Fields{
			"status": status,
		}).Error(publicMessage)
	}
}
