package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/shopspring/decimal"

	"github.com/budhip/go-fp-ledger/internal/models"
)

var (
	validate     = validator.New()
	registerOnce sync.Once
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

type ErrorValidateResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func register() {
	// register function to get tag name from json tags.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerDate()
	registerDecimal()
	registerNoStartEndSpaces()
}

// ValidateStruct validates toValidate and collects every failure as an
// ErrorValidateResponse inside a multierror.
func ValidateStruct(toValidate interface{}) error {
	registerOnce.Do(register)

	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, toResponse(valErr))
			}
		}
	}

	return errs.ErrorOrNil()
}

func toResponse(valErr validator.FieldError) ErrorValidateResponse {
	for _, key := range []string{
		fmt.Sprintf("%s_%s", valErr.Namespace(), valErr.Tag()),
		fmt.Sprintf("%s_%s", valErr.Field(), valErr.Tag()),
	} {
		if data, found := models.MapErrors[key]; found {
			return ErrorValidateResponse{
				Code:    data.Code,
				Field:   valErr.Field(),
				Message: data.ErrorMessage.Error(),
			}
		}
	}
	return ErrorValidateResponse{
		Code:    "UNKNOWN",
		Field:   valErr.Field(),
		Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
	}
}

func registerDate() {
	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return datePattern.MatchString(fl.Field().String())
	})
}

func registerDecimal() {
	validate.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
}

func registerNoStartEndSpaces() {
	validate.RegisterValidation("noStartEndSpaces", func(fl validator.FieldLevel) bool {
		str := fl.Field().String()
		return str == "" || (str[0] != ' ' && str[len(str)-1] != ' ')
	})
}
