package utils

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"dentaflow-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate          *validator.Validate
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterValidation("decimal_gt0", validateDecimalGreaterThanZero)
	validate.RegisterValidation("decimal_gte0", validateDecimalNotNegative)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("not_blank", validateNotBlank)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// decimalValue lets tags see a decimal as its canonical string.
func decimalValue(field reflect.Value) interface{} {
	if value, ok := field.Interface().(decimal.Decimal); ok {
		return value.String()
	}
	return nil
}

func validateDecimalGreaterThanZero(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	return err == nil && value.GreaterThan(decimal.Zero)
}

func validateDecimalNotNegative(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	return err == nil && !value.IsNegative()
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.TimeFormatDate, fl.Field().String())
	return err == nil
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(fl.Field().String())
}
