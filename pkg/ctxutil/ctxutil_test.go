package ctxutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUserIDFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name   string
		ctx    context.Context
		want   uuid.UUID
		wantOK bool
	}{
		{name: "valid id", ctx: WithUserID(context.Background(), id), want: id, wantOK: true},
		{name: "empty context", ctx: context.Background(), want: uuid.Nil},
		{name: "nil uuid", ctx: WithUserID(context.Background(), uuid.Nil), want: uuid.Nil},
		{
			name: "wrong type",
			ctx:  context.WithValue(context.Background(), ctxKey("user_id"), "not-a-uuid"),
			want: uuid.Nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := UserIDFromCtx(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("id = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRequesterFromCtx(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	if got := RequesterFromCtx(WithUserID(context.Background(), id)); got != id {
		t.Fatalf("expected %s, got %s", id, got)
	}
	if got := RequesterFromCtx(context.Background()); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for anonymous, got %s", got)
	}
}

func TestRequestIDFromCtx(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(WithRequestID(context.Background(), "req-123")); got != "req-123" {
		t.Fatalf("expected req-123, got %s", got)
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}

	wrong := context.WithValue(context.Background(), ctxKey("request_id"), 12345)
	if got := RequestIDFromCtx(wrong); got != "" {
		t.Fatalf("expected empty string for wrong type, got %s", got)
	}
}

func TestClientIPFromCtx(t *testing.T) {
	t.Parallel()

	if got := ClientIPFromCtx(WithClientIP(context.Background(), "203.0.113.7")); got != "203.0.113.7" {
		t.Fatalf("expected 203.0.113.7, got %s", got)
	}
	if got := ClientIPFromCtx(context.Background()); got != "" {
		t.Fatalf("expected empty string, got %s", got)
	}
}
