package util

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

func init() {
	validate = validator.New()
	// 错误按表单字段名返回
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
}

// FormErrors 字段名 -> 错误提示
type FormErrors map[string]string

func (e FormErrors) Add(field, msg string) FormErrors {
	if e == nil {
		e = FormErrors{}
	}
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
	return e
}

// ValidateForm 校验表单 DTO，通过时返回 nil
func ValidateForm(form any) FormErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return FormErrors{"__all__": "Enter a valid value."}
	}

	var res FormErrors
	for _, fe := range vErrs {
		res = res.Add(fe.Field(), messageFor(fe))
	}
	return res
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "eqfield":
		return "The two password fields didn't match."
	case "email":
		return "Enter a valid email address."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "numeric":
		return "Select a valid choice."
	default:
		return "Enter a valid value."
	}
}
