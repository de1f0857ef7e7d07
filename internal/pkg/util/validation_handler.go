package util

import (
	"errors"
	log "log/slog"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 返回原始的 validator 错误，交由响应层统一映射为 400
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			log.Warn("字段校验失败",
				"field", vErrs[0].Field(),
				"rule", vErrs[0].Tag())
		}
		return err
	}
	return nil
}
