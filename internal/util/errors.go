package util

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoQuestionsLeft  = errors.New("no questions left to play")
)

// 错误码对应的固定提示信息
var errorMessages = map[int]string{
	400: "bad request",
	403: "forbidden",
	404: "resource not found",
	405: "method not allowed",
	422: "unprocessable entity",
	500: "internal server error",
	503: "service unavailable",
}

// ErrorMessage returns the fixed message for an HTTP status code.
func ErrorMessage(code int) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "error"
}
