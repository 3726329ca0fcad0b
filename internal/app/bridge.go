package app

import (
	"context"

	"github.com/llehouerou/wavecue/internal/scenario"
)

// askRequest carries a question from a running check to the UI and the
// answer back.
type askRequest struct {
	Question scenario.Question
	reply    chan bool
}

// bridge returns an Ask function that blocks the check until the UI has
// answered on asks.
func bridge(asks chan<- askRequest) func(context.Context, scenario.Question) error {
	return func(ctx context.Context, q scenario.Question) error {
		req := askRequest{Question: q, reply: make(chan bool, 1)}
		select {
		case asks <- req:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case <-req.reply:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
