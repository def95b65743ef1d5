package dto

import (
	"reflect"
	"strings"

	"bancomeme-receipt-studio/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var receiptFields = map[string]struct{}{
	domain.FieldDate:            {},
	domain.FieldTime:            {},
	domain.FieldAmount:          {},
	domain.FieldSenderAccount:   {},
	domain.FieldReceiverAccount: {},
	domain.FieldReceiverName:    {},
	domain.FieldReceiverBank:    {},
	domain.FieldConcept:         {},
	domain.FieldReference:       {},
	domain.FieldFolio:           {},
	domain.FieldTrackingKey:     {},
	domain.FieldEmail:           {},
	domain.FieldCircleColor:     {},
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("receipt_field", validateReceiptField)
	}
}

// validateReceiptField accepts only the editable receipt field names.
func validateReceiptField(fl validator.FieldLevel) bool {
	_, ok := receiptFields[fl.Field().String()]
	return ok
}

// SanitizeStruct trims whitespace on every exported string field
// (including *string) of a struct pointer. Values end up on a raster
// canvas, not in HTML, so trimming is the only normalization applied.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
