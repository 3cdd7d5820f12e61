package handler

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lucasroqe/PDM-App-School/internal/model"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags to gin's validator
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected binding validator engine")
			return
		}
		err = v.RegisterValidation("aviso_tipo", func(fl validator.FieldLevel) bool {
			_, perr := model.ParseCategory(fl.Field().String())
			return perr == nil
		})
	})
	return err
}

// failedTag reports whether err is a validation failure of tag on field
func failedTag(err error, field, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Field() == field && fe.Tag() == tag {
			return true
		}
	}
	return false
}
