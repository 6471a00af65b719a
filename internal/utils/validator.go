package utils

import (
	"Crenza-Backend/domain"
	"github.com/go-playground/validator/v10"
	"reflect"
	"slices"
	"strings"
)

var Validate *validator.Validate

func InitValidator() {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("weekday", oneOf(domain.Days))
	_ = v.RegisterValidation("mealslot", oneOf(domain.Meals))
	Validate = v
}

func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, fl.Field().String())
	}
}
