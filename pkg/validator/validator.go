package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("numcode", numericCodeValidator)
		if err != nil {
			log.Fatal("register numcode validator failed")
		}
	}
}

// numcode matches the 6-digit verification and reset codes.
var numericCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	code := fl.Field().String()
	pattern := `^\d{6}$`
	matched, err := regexp.MatchString(pattern, code)
	if err != nil {
		return false
	}
	return matched
}
