package Controllers

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator
)

func init() {
	validate = validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	translator, _ = uni.GetTranslator("en")
	enTranslations.RegisterDefaultTranslations(validate, translator)
}

// ValidateStruct runs the struct tags and returns translated messages,
// empty when the input is valid.
func ValidateStruct(input interface{}) []string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(errs))
	for _, fieldErr := range errs {
		messages = append(messages, fieldErr.Translate(translator))
	}
	return messages
}
