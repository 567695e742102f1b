package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse carries the user-facing error string the web and mobile
// clients render. Empty on success.
type ErrorResponse struct {
	Error string `json:"error"`
} // @name ErrorResponse

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

func bindErrorResponse(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		out := make([]ValidationError, len(verr))
		for i, ferr := range verr {
			out[i] = ValidationError{ferr.Field(), msgForTag(ferr.Tag(), ferr.Param())}
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "Validation error",
			Errors: out,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "numcode":
		return "Code must be a 6-digit number"
	case "min":
		return fmt.Sprintf("Minimum length is %v", value)
	case "max":
		return fmt.Sprintf("Maximum length is %v", value)
	}
	return tag
}
