// Package apierror renders the portal's uniform JSON error bodies.
//
// Every error response has the shape {"message": "...", "errors": {"field": ["..."]}},
// where "errors" is present only for field-level failures (422).
package apierror

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Standard messages.
const (
	MsgInvalidCredentials = "The provided credentials are incorrect."
	MsgInvalidData        = "The given data was invalid."
	MsgUnauthenticated    = "Unauthenticated."
	MsgForbidden          = "This action is unauthorized."
	MsgNotFound           = "Resource not found."
	MsgTooManyRequests    = "Too many attempts. Please try again later."
	MsgInternal           = "Internal server error."
)

// Response is the error body returned by every failing endpoint.
type Response struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// MessageResponse is the body of successful endpoints that carry no resource.
type MessageResponse struct {
	Message string `json:"message"`
}

func init() {
	// Report json field names instead of Go struct field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	}
}

// Write aborts the request with status and message.
func Write(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Response{Message: message})
}

// Fields aborts the request with 422 and a field-keyed error map.
func Fields(c *gin.Context, message string, fields map[string][]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Response{Message: message, Errors: fields})
}

// InvalidCredentials reports a failed login without revealing which field was wrong.
func InvalidCredentials(c *gin.Context) {
	Fields(c, MsgInvalidCredentials, map[string][]string{"email": {MsgInvalidCredentials}})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context) { Write(c, http.StatusUnauthorized, MsgUnauthenticated) }

// Forbidden aborts with 403.
func Forbidden(c *gin.Context) { Write(c, http.StatusForbidden, MsgForbidden) }

// NotFound aborts with 404 and the given message, or a generic one.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = MsgNotFound
	}
	Write(c, http.StatusNotFound, message)
}

// Internal aborts with 500 without leaking the cause.
func Internal(c *gin.Context) { Write(c, http.StatusInternalServerError, MsgInternal) }

// BindJSON binds the request body into obj and validates it. An empty body is
// validated as an empty object so that required fields are still reported per
// field. On failure a 422 response has already been written.
func BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return true
	}
	Validation(c, err)
	return false
}

// Validation converts a binding error into a 422 response.
func Validation(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string][]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
		}
		Fields(c, MsgInvalidData, fields)
		return
	}
	Fields(c, MsgInvalidData, map[string][]string{"body": {"The request body must be a valid JSON object."}})
}

// FieldError builds a single-field validation map.
func FieldError(field, message string) map[string][]string {
	return map[string][]string{field: {message}}
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", name)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", name, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	default:
		return fmt.Sprintf("The %s field is invalid.", name)
	}
}
