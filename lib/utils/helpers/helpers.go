package helpers

import (
	"context"
)

// HeaderLogIgnore отключает логирование тела ответа для запроса
const HeaderLogIgnore = "X-Log-Ignore"

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}
