package config

import (
	"reflect"
	"strings"

	"github.com/LambdaTest/coverage-status/pkg/errs"
	"github.com/LambdaTest/coverage-status/pkg/lumber"
	"github.com/LambdaTest/coverage-status/pkg/urlmanager"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const (
	jsonTagName       = "json"
	emptyTagName      = "-"
	repositoryTagName = "repository"
)

// ValidateCfg checks the validity of the config
func ValidateCfg(cfg *StatusConfig, logger lumber.Logger) error {
	validate, trans, err := getValidator()
	if err != nil {
		return err
	}
	if validateErr := validate.Struct(cfg); validateErr != nil {
		validationErrs, ok := validateErr.(validator.ValidationErrors)
		if !ok {
			return validateErr
		}
		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, e.Translate(trans))
		}
		return errs.ErrVldCfg(messages)
	}
	if cfg.Token == "" {
		if !cfg.DryRun {
			return errs.ErrMissingToken
		}
		logger.Warnf("no api token found, continuing because of dry run")
	}
	return nil
}

func getValidator() (*validator.Validate, ut.Translator, error) {
	enObj := en.New()
	uni := ut.New(enObj, enObj)
	trans, _ := uni.GetTranslator("en")
	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, err
	}
	if err := configureValidator(validate, trans); err != nil {
		return nil, nil, err
	}
	return validate, trans, nil
}

// configureValidator names fields after their flag and registers the repository tag
func configureValidator(validate *validator.Validate, trans ut.Translator) error {
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// nolint: gomnd
		name := strings.SplitN(fld.Tag.Get(jsonTagName), ",", 2)[0]
		if name == "" || name == emptyTagName {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation(repositoryTagName, func(fl validator.FieldLevel) bool {
		_, _, err := urlmanager.SplitRepository(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}

	return validate.RegisterTranslation(repositoryTagName, trans, func(ut ut.Translator) error {
		return ut.Add(repositoryTagName, "{0} must be of the form owner/name", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(repositoryTagName, fe.Field())
		return t
	})
}
