package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/dashgrid/pkg/observability"
)

type countingHooks struct {
	hits, misses, sets int
	keyTypes           []string
}

func (h *countingHooks) OnCacheHit(_ context.Context, kt string) {
	h.hits++
	h.keyTypes = append(h.keyTypes, kt)
}

func (h *countingHooks) OnCacheMiss(_ context.Context, kt string) {
	h.misses++
	h.keyTypes = append(h.keyTypes, kt)
}

func (h *countingHooks) OnCacheSet(_ context.Context, kt string, _ int) {
	h.sets++
	h.keyTypes = append(h.keyTypes, kt)
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "artifacts"))
	if err != nil {
		t.Fatalf("NewFileCache() = %v", err)
	}
	key := ArtifactKey("abc", "svg")

	if _, hit, err := c.Get(ctx, key); hit || err != nil {
		t.Fatalf("Get(empty) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, key, []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set() = %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete() = %v", err)
	}
	if _, hit, _ := c.Get(ctx, key); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "artifact:x", []byte("old"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "artifact:x"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("artifact:x")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}

	if err := c.Set(ctx, "artifact:y", []byte("forever"), 0); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:y"); !hit {
		t.Error("entry without ttl should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("artifact:bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "artifact:bad"); hit || err != nil {
		t.Errorf("Get(corrupt) = hit %v, err %v, want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"svg", "json", "png"} {
		if err := c.Set(ctx, ArtifactKey("h", f), []byte(f), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() = %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d entries, want 3", n)
	}
	if _, hit, _ := c.Get(ctx, ArtifactKey("h", "svg")); hit {
		t.Error("Get after Clear should miss")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("cache dir should survive Clear: %v", err)
	}
}

func TestFileCacheHooks(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := ArtifactKey("h", "svg")

	c.Get(ctx, key)
	c.Set(ctx, key, []byte("data"), 0)
	c.Get(ctx, key)

	if hooks.misses != 1 || hooks.sets != 1 || hooks.hits != 1 {
		t.Errorf("hooks = %d misses, %d sets, %d hits, want 1 each", hooks.misses, hooks.sets, hooks.hits)
	}
	for _, kt := range hooks.keyTypes {
		if kt != "artifact" {
			t.Errorf("key type = %q, want artifact", kt)
		}
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestArtifactKey(t *testing.T) {
	base := ArtifactKey("hash123", "svg")
	if !strings.HasPrefix(base, "artifact:") {
		t.Errorf("ArtifactKey() = %q, want artifact: prefix", base)
	}
	if base != ArtifactKey("hash123", "svg") {
		t.Error("ArtifactKey should be deterministic")
	}

	others := []string{
		ArtifactKey("hash456", "svg"),
		ArtifactKey("hash123", "json"),
		ArtifactKey("hash123", "svg", "dots"),
	}
	for _, k := range others {
		if k == base {
			t.Errorf("ArtifactKey collision: %q", k)
		}
	}
}

func TestKeyType(t *testing.T) {
	tests := []struct {
		key, want string
	}{
		{"artifact:abc", "artifact"},
		{"plain", "unknown"},
		{":abc", "unknown"},
	}
	for _, tt := range tests {
		if got := keyType(tt.key); got != tt.want {
			t.Errorf("keyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		addr     string
		wantAddr string
		wantDB   int
		wantErr  bool
	}{
		{addr: "localhost:6379", wantAddr: "localhost:6379"},
		{addr: "redis://cache.internal:6380/2", wantAddr: "cache.internal:6380", wantDB: 2},
		{addr: "redis://cache.internal:6380/notadb", wantErr: true},
		{addr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			opts, err := redisOptions(tt.addr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("redisOptions(%q) should fail", tt.addr)
				}
				return
			}
			if err != nil {
				t.Fatalf("redisOptions(%q) = %v", tt.addr, err)
			}
			if opts.Addr != tt.wantAddr || opts.DB != tt.wantDB {
				t.Errorf("redisOptions(%q) = %s db %d, want %s db %d", tt.addr, opts.Addr, opts.DB, tt.wantAddr, tt.wantDB)
			}
		})
	}
}

func TestRedisCacheKeyPrefix(t *testing.T) {
	c := NewRedisCacheFromClient(redis.NewClient(&redis.Options{Addr: "localhost:0"}), DefaultRedisPrefix)
	defer c.Close()

	if got := c.key("artifact:abc"); got != "dashgrid:artifact:abc" {
		t.Errorf("key() = %q", got)
	}
}

func TestNewRedisCacheCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRedisCache(ctx, "localhost:0")
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewRedisCache() = %v, want ErrUnavailable", err)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrUnavailable)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Error("wrapped error should unwrap to the original")
	}
	if err.Error() != ErrUnavailable.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(ErrUnavailable) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetryWithBackoff(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	ctx := context.Background()
	permanent := errors.New("permanent")

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{name: "success", failures: 0, wantCalls: 1},
		{name: "non-retryable", failures: 5, err: permanent, wantCalls: 1, wantErr: permanent},
		{name: "recovers", failures: 1, err: Retryable(ErrUnavailable), wantCalls: 2},
		{name: "gives up", failures: 5, err: Retryable(ErrUnavailable), wantCalls: 3, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := RetryWithBackoff(ctx, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("RetryWithBackoff() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("RetryWithBackoff() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRetryWithBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryWithBackoff(ctx, func() error {
		return Retryable(ErrUnavailable)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}
