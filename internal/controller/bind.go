package controller

import (
	"encoding/json"
	"errors"
	"strings"
	"trivia_backend/internal/service"
	"trivia_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body. Malformed JSON is a 400; a value of the
// wrong type is a 422 naming the field. It reports whether decoding succeeded.
func bindJSON(ctx *gin.Context, dst interface{}) bool {
	err := ctx.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		util.ValidationFailed(ctx, map[string]string{
			jsonFieldName(typeErr.Field): "must be of type " + typeErr.Type.String(),
		})
		return false
	}

	util.BadRequest(ctx)
	return false
}

// jsonFieldName 去掉嵌入结构体前缀，"CreateQuestionInput.difficulty" -> "difficulty"
func jsonFieldName(field string) string {
	if i := strings.LastIndexByte(field, '.'); i >= 0 {
		return field[i+1:]
	}
	return field
}

// writeServiceError maps a service error to the error catalogue.
func writeServiceError(ctx *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		util.ValidationFailed(ctx, verr.Fields)
	case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrCategoryNotFound):
		util.NotFound(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
