package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Un error de campo con la misma forma que produce express-validator.
type FieldError struct {
	Type     string `json:"type"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Location string `json:"location"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar los campos por su nombre JSON, no por el nombre del struct.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decodifica el cuerpo JSON. Un error de tipo sobre un campo conocido se
// traduce a su mensaje de validación; cualquier otro cuerpo malformado es 400.
func bindJSON(c *gin.Context, obj interface{}, typeMessages map[string]string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if msg, ok := typeMessages[typeErr.Field]; ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"errors": []FieldError{{
						Type:     "field",
						Msg:      msg,
						Path:     typeErr.Field,
						Location: "body",
					}},
				})
				return false
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "JSON inválido",
		})
		return false
	}
	return true
}

// Ejecuta todas las reglas del struct y junta todos los fallos; las claves
// del mapa de mensajes son "<campo json>.<regla>".
func checkStruct(obj interface{}, messages map[string]string) []FieldError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Type: "field", Msg: "Cuerpo de la petición inválido", Location: "body"}}
	}

	fieldErrs := make([]FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		msg, ok := messages[fieldErr.Field()+"."+fieldErr.Tag()]
		if !ok {
			msg = "El campo " + fieldErr.Field() + " no es válido"
		}
		fieldErrs = append(fieldErrs, FieldError{
			Type:     "field",
			Msg:      msg,
			Path:     fieldErr.Field(),
			Location: "body",
		})
	}
	return fieldErrs
}

func respondValidation(c *gin.Context, fieldErrs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"errors": fieldErrs,
	})
}
