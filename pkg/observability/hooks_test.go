package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Design hooks
	d := NoopDesignHooks{}
	d.OnGenerateStart(ctx, "Independent House", 2)
	d.OnGenerateComplete(ctx, "Independent House", 1560, time.Second, nil)
	d.OnLayoutStart(0, 9)
	d.OnLayoutComplete(0, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "design")
	c.OnCacheMiss(ctx, "plan")
	c.OnCacheSet(ctx, "design", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Design().(NoopDesignHooks); !ok {
		t.Error("Design() should return NoopDesignHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customDesign := &testDesignHooks{}
	SetDesignHooks(customDesign)
	if Design() != customDesign {
		t.Error("SetDesignHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Design().(NoopDesignHooks); !ok {
		t.Error("Reset() should restore NoopDesignHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDesignHooks{}
	SetDesignHooks(custom)

	// Setting nil should be ignored
	SetDesignHooks(nil)

	if Design() != custom {
		t.Error("SetDesignHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDesignHooks struct{ NoopDesignHooks }
type testCacheHooks struct{ NoopCacheHooks }
