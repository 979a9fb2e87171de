package handler

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/vmihailenco/msgpack/v5"

	"mortgage-engine/internal/model"
)

const (
	contentTypeJSON    = "application/json"
	contentTypeMsgpack = "application/msgpack"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *Handler) decode(ctx *fasthttp.RequestCtx, v interface{}) bool {
	body := ctx.PostBody()
	if len(body) == 0 {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Request body is required")
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) validateRequest(ctx *fasthttp.RequestCtx, v interface{}) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		h.writeError(ctx, fasthttp.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, describe(fe))
	}
	h.log.Warn().Strs("details", details).Msg("request validation failed")

	h.writeErrorResponse(ctx, model.ErrorResponse{
		Status:  fasthttp.StatusBadRequest,
		Message: "Invalid request",
		Details: details,
	})
	return false
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "ltefield":
		return fmt.Sprintf("%s must not exceed %s", fe.Field(), toSnake(fe.Param()))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}

// toSnake turns a Go field name into its JSON spelling: PropertyPrice -> property_price.
func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func wantsMsgpack(ctx *fasthttp.RequestCtx) bool {
	return bytes.Contains(ctx.Request.Header.Peek("Accept"), []byte(contentTypeMsgpack))
}

func (h *Handler) writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	var (
		body        []byte
		contentType = contentTypeJSON
		err         error
	)

	if wantsMsgpack(ctx) {
		contentType = contentTypeMsgpack
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		err = enc.Encode(v)
		body = buf.Bytes()
	} else {
		body, err = json.Marshal(v)
	}

	if err != nil {
		h.log.Error().Err(err).Msg("failed to encode response")
		ctx.Response.Reset()
		ctx.SetContentType(contentTypeJSON)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"Failed to encode response"}`)
		return
	}

	ctx.SetContentType(contentType)
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	h.writeErrorResponse(ctx, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

func (h *Handler) writeErrorResponse(ctx *fasthttp.RequestCtx, resp model.ErrorResponse) {
	h.writeJSON(ctx, resp.Status, resp)
}
