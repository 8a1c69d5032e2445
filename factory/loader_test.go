package factory_test

import (
	"sync"
	"testing"

	"github.com/xraph/portal/factory"
)

func TestLoader_DefaultStrategyIsRegistry(t *testing.T) {
	l := factory.NewLoader(factory.DefaultConfig())
	l.Registry().Register("F", func() any { return "from-registry" })

	got, err := l.Resolve("F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-registry" {
		t.Errorf("got %v, want from-registry", got)
	}
}

func TestLoader_NamedStrategySelected(t *testing.T) {
	alt := factory.ResolverFunc(func(name string) (any, error) {
		return "alt:" + name, nil
	})
	l := factory.NewLoader(factory.Config{Strategy: "alt"},
		factory.WithStrategy("alt", func() factory.Resolver { return alt }),
	)

	got, err := l.Resolve("F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "alt:F" {
		t.Errorf("got %v, want alt:F", got)
	}
}

func TestLoader_UnknownStrategyFallsBack(t *testing.T) {
	l := factory.NewLoader(factory.Config{Strategy: "missing"})
	l.Registry().Register("F", func() any { return "fallback" })

	got, err := l.Resolve("F")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "fallback" {
		t.Errorf("got %v, want fallback", got)
	}
}

func TestLoader_SelectionIsSticky(t *testing.T) {
	constructed := 0
	l := factory.NewLoader(factory.Config{Strategy: "alt"},
		factory.WithStrategy("alt", func() factory.Resolver {
			constructed++
			return factory.ResolverFunc(func(name string) (any, error) {
				return name, nil
			})
		}),
	)

	for i := 0; i < 5; i++ {
		if _, err := l.Resolve("F"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if constructed != 1 {
		t.Errorf("strategy constructed %d times after first use, want 1", constructed)
	}
}

func TestLoader_ConcurrentFirstUse(t *testing.T) {
	l := factory.NewLoader(factory.DefaultConfig())
	l.Registry().Register("F", func() any { return "ok" })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := l.Resolve("F")
			if err != nil || got != "ok" {
				t.Errorf("got %v, %v", got, err)
			}
		}()
	}
	wg.Wait()
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(factory.EnvStrategy, "remote")
	cfg := factory.ConfigFromEnv()
	if cfg.Strategy != "remote" {
		t.Errorf("Strategy = %q, want remote", cfg.Strategy)
	}
}
