package api

import (
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lifeline-bd/lifeline-api/schema"
)

// bdPhone accepts a Bangladesh mobile number with or without the country code
var bdPhone = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// report json names in field errors
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
		return bdPhone.MatchString(strings.ReplaceAll(fl.Field().String(), "-", ""))
	})

	v.RegisterValidation("bloodgroup", func(fl validator.FieldLevel) bool {
		return schema.BloodGroup(fl.Field().String()).Valid()
	})
}

// bindingFields converts validation failures into a field to tag map
func bindingFields(err error) map[string]string {
	fields := map[string]string{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			fields[e.Field()] = e.Tag()
		}
	}
	return fields
}

// bindJSON binds the request body. Malformed bodies and validation failures
// are answered with 400 and false is returned.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.Error(err)

		fields := bindingFields(err)
		if len(fields) == 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
			return false
		}

		resp := errorInvalidParameters
		resp.Fields = fields
		abortWithEncoding(c, http.StatusBadRequest, resp)
		return false
	}
	return true
}
