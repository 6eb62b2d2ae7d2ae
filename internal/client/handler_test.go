package client

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestNormalizeErrorNil(t *testing.T) {
	if got := normalizeError(nil); got != nil {
		t.Errorf("normalizeError(nil) = %v, want nil", got)
	}
}

func TestNormalizeErrorKnownCodes(t *testing.T) {
	tests := []struct {
		code codes.Code
		want error
	}{
		{codes.NotFound, ErrNotFound},
		{codes.Unavailable, ErrUnavailable},
		{codes.DeadlineExceeded, ErrDeadlineExceeded},
		{codes.Internal, ErrInternal},
		{codes.Unknown, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := status.Error(tt.code, "boom")
			got := normalizeError(err)
			if !errors.Is(got, tt.want) {
				t.Errorf("normalizeError(%v) = %v, want wrapping %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestNormalizeErrorNonStatus(t *testing.T) {
	err := fmt.Errorf("plain error, no grpc status")
	got := normalizeError(err)
	if !errors.Is(got, ErrInternal) {
		t.Errorf("normalizeError(plain) = %v, want wrapping ErrInternal", got)
	}
}
