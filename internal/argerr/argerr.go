package argerr

import "strings"

// Error ошибка с кодом, возвращаемая операциями при недопустимых входных данных.
type Error struct {
	Code ErrorCode
	Msg  string
}

func (e Error) Error() string {
	if e.Msg != "" {
		var b strings.Builder
		b.WriteString(e.Code.String())
		b.WriteByte('[')
		b.WriteString(e.Msg)
		b.WriteByte(']')
		return b.String()
	}

	return e.Code.String()
}

func newCodedError(code ErrorCode, msg ...string) Error {
	e := Error{
		Code: code,
	}
	switch len(msg) {
	case 0:
	case 1:
		e.Msg = msg[0]
	default:
		e.Msg = strings.Join(msg, ": ")
	}

	return e
}

// NewInvalidArgument ошибка недопустимого аргумента: отсутствующая ссылка,
// индекс за границами или нарушенное числовое предусловие.
func NewInvalidArgument(msg ...string) Error {
	return newCodedError(CodeInvalidArgument, msg...)
}

// IsInvalidArgument проверка, что err (возможно обёрнутая) является
// ошибкой недопустимого аргумента.
func IsInvalidArgument(err error) bool {
	return AsCode(err) == CodeInvalidArgument
}
