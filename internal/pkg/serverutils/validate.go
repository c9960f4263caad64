package serverutils

import (
	"ayat-reflection-be/internal/constant"
	"ayat-reflection-be/internal/dto"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct validation and converts failures into the
// user-facing copy. Field-level detail never leaves the server.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			if fe.Field() == "Feeling" {
				switch fe.Tag() {
				case "required", "min":
					return &dto.ValidationError{Message: constant.MsgValidationTooShort}
				case "max":
					return &dto.ValidationError{Message: constant.MsgValidationTooLong}
				}
			}
		}
	}

	return &dto.ValidationError{Message: constant.MsgValidationInvalid}
}
