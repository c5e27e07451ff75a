package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var global = validator.New()

// Struct validates v and returns a message naming the first offending field,
// or nil when the payload is valid.
func Struct(v any) error {
	err := global.Struct(v)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("missing field: %s", field)
	case "oneof":
		return fmt.Errorf("invalid value for field: %s", field)
	default:
		return fmt.Errorf("invalid field: %s", field)
	}
}
