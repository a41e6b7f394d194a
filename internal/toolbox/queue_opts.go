package toolbox

import "github.com/sirkon/dstoolbox/internal/logging"

// RotateOpt определение опции поворота очереди.
type RotateOpt func(o *rotateOptions, _ rotateOptRestriction)

type rotateOptRestriction struct{}

type rotateOptions struct {
	logger logging.Logger
}

// WithRotateLogger установка логгера событий поворота.
// По-умолчанию ничего не логируется.
func WithRotateLogger(logger logging.Logger) RotateOpt {
	return func(o *rotateOptions, _ rotateOptRestriction) {
		if logger != nil {
			o.logger = logger
		}
	}
}
