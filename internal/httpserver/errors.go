package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"records-api/internal/docstore"
	"records-api/internal/domain"
)

const (
	msgInvalidComposer    = "Invalid composerId"
	msgInvalidTeam        = "Invalid teamId"
	msgInvalidUserName    = "Invalid userName"
	msgInvalidCredentials = "Invalid username and/or password"
	msgUserNameTaken      = "Username is already in use"
)

type handler struct {
	log            *zap.SugaredLogger
	deps           Deps
	notFoundStatus int
}

type messageResponse struct {
	Message string `json:"message"`
}

// ok logs event and writes body with status 200.
func (h *handler) ok(c *gin.Context, body any, event string, kv ...any) {
	kv = append(kv, "request_id", c.GetString(requestIDKey))
	h.log.Infow(event, kv...)
	c.JSON(http.StatusOK, body)
}

// fail writes the single error response for err. notFound is the message used
// when the addressed entity does not exist.
func (h *handler) fail(c *gin.Context, notFound string, err error) {
	status, msg := h.classify(notFound, err)
	kv := []any{
		"route", c.FullPath(),
		"status", status,
		"error", err,
		"request_id", c.GetString(requestIDKey),
	}
	if status >= http.StatusInternalServerError {
		h.log.Errorw("request failed", kv...)
	} else {
		h.log.Infow("request rejected", kv...)
	}
	c.AbortWithStatusJSON(status, messageResponse{Message: msg})
}

func (h *handler) classify(notFound string, err error) (int, string) {
	var verr *domain.ValidationError
	var storeErr *docstore.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return h.notFoundStatus, notFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, domain.ErrUserNameTaken), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusUnauthorized, msgUserNameTaken
	case errors.As(err, &verr):
		return http.StatusBadRequest, verr.Error()
	case errors.As(err, &storeErr):
		h.deps.Metrics.StoreError(storeErr.Collection, storeErr.Op)
		return http.StatusNotImplemented, "MongoDB Exception: " + storeErr.Err.Error()
	default:
		return http.StatusInternalServerError, "Server Exception: " + err.Error()
	}
}

// bindJSON decodes and validates the body into dst, reporting problems as
// *domain.ValidationError.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindingError(err)
	}
	return nil
}

// bindWithParent binds the body. When binding fails, an error from parent
// (a missing parent entity, a taken userName) is returned instead.
func bindWithParent(c *gin.Context, dst any, parent func() error) error {
	err := bindJSON(c, dst)
	if err == nil {
		return nil
	}
	if perr := parent(); perr != nil {
		return perr
	}
	return err
}

func bindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		fe := fieldErrs[0]
		return domain.NewValidationError(fieldPath(fe), reason(fe))
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return domain.NewValidationError(field, "has an invalid type")
	case errors.Is(err, io.EOF):
		return domain.NewValidationError("body", "is required")
	default:
		return domain.NewValidationError("body", "is not valid JSON")
	}
}

// fieldPath drops the request struct name from the namespace, leaving the
// JSON path (players[0].salary).
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		if fe.Param() == "0" {
			return "must not be negative"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
