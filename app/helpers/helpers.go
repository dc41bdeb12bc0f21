package helpers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

func GenerateSlug(s string) string {
	return slug.Make(s)
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s é obrigatório.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s deve ser um e-mail válido.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s deve ser numérico.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s deve ser no mínimo %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s deve ser no máximo %s.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s deve ser um de: %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validação %s falhou no campo %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}
