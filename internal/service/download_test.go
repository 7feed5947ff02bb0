package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestDlTimedOut(t *testing.T) {
	if !dlTimedOut(context.DeadlineExceeded) {
		t.Error("deadline exceeded should count as a timeout")
	}
	if !dlTimedOut(fmt.Errorf("all formats failed: %w", context.DeadlineExceeded)) {
		t.Error("wrapped deadline exceeded should count as a timeout")
	}
	if dlTimedOut(context.Canceled) {
		t.Error("cancellation is not a timeout")
	}
	if dlTimedOut(errors.New("network unreachable")) {
		t.Error("ordinary errors are not timeouts")
	}
}
