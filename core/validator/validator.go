package validator

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Validator validates tagged structs
type Validator interface {
	Struct(s any) error
	StructCtx(ctx context.Context, s any) error
}

// Validate is the shared instance used by the config loader
var Validate Validator = New()

type validatorImpl struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a validator that reports fields by their mapstructure or json
// name and renders English messages
func New() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	return &validatorImpl{validate: v, trans: trans}
}

func (v *validatorImpl) Struct(s any) error {
	return v.StructCtx(context.Background(), s)
}

func (v *validatorImpl) StructCtx(ctx context.Context, s any) error {
	if s == nil {
		return errors.New("validation target cannot be nil")
	}
	return v.translate(v.validate.StructCtx(ctx, s))
}

func (v *validatorImpl) translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &ValidationErrors{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:     fe.Field(),
			Namespace: fe.Namespace(),
			Tag:       fe.Tag(),
			Message:   fe.Translate(v.trans),
		})
	}
	return out
}

func fieldName(f reflect.StructField) string {
	for _, key := range []string{"mapstructure", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
