package interfaces

import (
	"context"

	"github.com/m-mizutani/mmhook/pkg/domain/model"
)

type Notifier interface {
	Notify(ctx context.Context, msg model.Message) (int, error)
}
