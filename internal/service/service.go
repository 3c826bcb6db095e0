package service

import (
	"context"
	"results_feed/internal/model"
)

type FeedService interface {
	Start(ctx context.Context) error
	Stop() error
	Refresh(ctx context.Context) (model.Window, bool)
	Window() model.Window
}
