package argerr

import "errors"

// AsCode получить код соответствующий ошибке.
func AsCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}

	var target Error
	if !errors.As(err, &target) {
		return CodeInternal
	}

	return target.Code
}

// ErrorCode коды ошибок.
type ErrorCode int32

const (
	// CodeUnknown неиспользуемый код ошибки.
	CodeUnknown ErrorCode = 0

	// CodeOK всё нормально
	CodeOK ErrorCode = 200

	// CodeInternal ошибка не из этого пакета.
	CodeInternal ErrorCode = 1000

	// CodeInvalidArgument недопустимые параметры операции пришедшие от пользователя.
	CodeInvalidArgument ErrorCode = 4000
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInternal:
		return "INTERNAL_ERROR"
	case CodeOK:
		return "OK"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN_ERROR"
	}
}
