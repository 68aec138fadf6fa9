package routes

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"ezelectronics/errs"
	"ezelectronics/models"
	"ezelectronics/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeBody reads a JSON body into dst and validates it.
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrValidation, err)
	}
	return validateStruct(dst)
}

func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrValidation, err)
	}
	return nil
}

// pathValue returns the named path parameter, which must satisfy tag.
func pathValue(r *http.Request, name, tag string) (string, error) {
	value := r.PathValue(name)
	if err := validate.Var(value, tag); err != nil {
		return "", fmt.Errorf("%w: %s %s", errs.ErrValidation, name, err)
	}
	return value, nil
}

func modelParam(r *http.Request) (string, error) {
	return pathValue(r, "model", "required")
}

// writeError answers with the status of a typed error. Anything else is
// logged and reported as a 500.
func writeError(w http.ResponseWriter, err error) {
	status := errs.Status(err)
	if status == http.StatusInternalServerError {
		log.Println(utils.ErrorWithTrace(err, "unexpected error"))
		utils.HandleError(w, status, "Internal server error")
		return
	}
	utils.HandleError(w, status, err.Error())
}

func sendOK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

const roleTag = "oneof=" + string(models.RoleCustomer) + " " + string(models.RoleManager) + " " + string(models.RoleAdmin)
