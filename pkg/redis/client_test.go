package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type mockCmdable struct {
	values map[string]string
}

func newMockCmdable() *mockCmdable {
	return &mockCmdable{values: map[string]string{}}
}

func (m *mockCmdable) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (m *mockCmdable) Set(ctx context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	m.values[key] = toString(value)
	return redis.NewStatusResult("OK", nil)
}

func (m *mockCmdable) Get(ctx context.Context, key string) *redis.StringCmd {
	value, ok := m.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (m *mockCmdable) SetNX(ctx context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	if _, exists := m.values[key]; exists {
		return redis.NewBoolResult(false, nil)
	}
	m.values[key] = toString(value)
	return redis.NewBoolResult(true, nil)
}

func (m *mockCmdable) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := m.values[key]; ok {
			delete(m.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

func TestCartKeyNamespacing(t *testing.T) {
	client := &Client{}
	if got := client.CartKey("abc"); got != "nm:cart:abc" {
		t.Fatalf("unexpected cart key: %q", got)
	}
	if got := client.MutationLockKey("abc"); got != "nm:lock:cart:abc" {
		t.Fatalf("unexpected lock key: %q", got)
	}
}

func TestSetGetDel(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	if err := client.Set(ctx, "nm:cart:1", `[{"product_id":"p1"}]`, time.Minute); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, err := client.Get(ctx, "nm:cart:1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != `[{"product_id":"p1"}]` {
		t.Fatalf("unexpected value: %q", value)
	}

	if err := client.Del(ctx, "nm:cart:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if _, err := client.Get(ctx, "nm:cart:1"); err != Nil {
		t.Fatalf("expected Nil after delete, got %v", err)
	}
}

func TestMutationLockIsExclusive(t *testing.T) {
	ctx := context.Background()
	client := &Client{store: newMockCmdable()}

	acquired, err := client.AcquireMutationLock(ctx, "cart-1", 10*time.Second)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	if !acquired {
		t.Fatal("expected first acquire to succeed")
	}

	acquired, err = client.AcquireMutationLock(ctx, "cart-1", 10*time.Second)
	if err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if acquired {
		t.Fatal("expected second acquire to be rejected")
	}

	// A different cart holds its own lock.
	acquired, err = client.AcquireMutationLock(ctx, "cart-2", 10*time.Second)
	if err != nil || !acquired {
		t.Fatalf("expected independent lock for other cart, got %v %v", acquired, err)
	}

	if err := client.ReleaseMutationLock(ctx, "cart-1"); err != nil {
		t.Fatalf("release: %v", err)
	}
	acquired, err = client.AcquireMutationLock(ctx, "cart-1", 10*time.Second)
	if err != nil || !acquired {
		t.Fatalf("expected re-acquire after release, got %v %v", acquired, err)
	}
}

func TestUninitializedClient(t *testing.T) {
	client := &Client{}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected error from uninitialized client")
	}
}
