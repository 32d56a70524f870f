package infrastructure

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/rolebot/internal/modules/reaction_role/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestMemoryRegistry_Lookup(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	// Lookup before population resolves to nothing
	if _, ok := reg.Lookup(ctx, "🔥"); ok {
		t.Fatal("expected no role before population")
	}

	if err := reg.Replace(ctx, domain.ReactionRoles{"🔥": 42}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	roleID, ok := reg.Lookup(ctx, "🔥")
	if !ok {
		t.Fatal("expected role after population")
	}
	if roleID != snowflake.ID(42) {
		t.Errorf("expected role 42, got %d", roleID)
	}

	if _, ok := reg.Lookup(ctx, "💧"); ok {
		t.Error("expected no role for unmapped emoji")
	}
}

func TestMemoryRegistry_Replace(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	if err := reg.Replace(ctx, domain.ReactionRoles{"🔥": 42, "💧": 43}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Replace(ctx, domain.ReactionRoles{"🌱": 44}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Replace drops entries from the previous mapping
	if _, ok := reg.Lookup(ctx, "🔥"); ok {
		t.Error("expected previous entry to be gone after replace")
	}
	if reg.Count() != 1 {
		t.Errorf("expected count 1, got %d", reg.Count())
	}
}

func TestMemoryRegistry_ReplaceCopiesInput(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	roles := domain.ReactionRoles{"🔥": 42}
	if err := reg.Replace(ctx, roles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	roles["🔥"] = 99
	roles["💧"] = 43

	roleID, _ := reg.Lookup(ctx, "🔥")
	if roleID != snowflake.ID(42) {
		t.Errorf("expected stored role 42, got %d", roleID)
	}
	if reg.Count() != 1 {
		t.Errorf("expected count 1, got %d", reg.Count())
	}
}

func TestMemoryRegistry_ReplaceWithNil(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	if err := reg.Replace(ctx, domain.ReactionRoles{"🔥": 42}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Replace(ctx, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reg.Count() != 0 {
		t.Errorf("expected empty registry, got %d entries", reg.Count())
	}
	if _, ok := reg.Lookup(ctx, "🔥"); ok {
		t.Error("expected no role after replacing with nil")
	}
}

func TestMemoryRegistry_ConcurrentLookups(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	roles := make(domain.ReactionRoles)
	for i := range 100 {
		roles[domain.Emoji(fmt.Sprintf("emoji-%d", i))] = snowflake.ID(i + 1)
	}
	if err := reg.Replace(ctx, roles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for emoji, want := range roles {
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, ok := reg.Lookup(ctx, emoji)
				if !ok || got != want {
					t.Errorf("expected %q -> %d, got %d (ok=%v)", emoji, want, got, ok)
				}
			}()
		}
	}

	wg.Wait()
}

func TestMemoryRegistry_LookupDuringReplaceIsNeverTorn(t *testing.T) {
	ctx := context.Background()
	reg := NewMemoryRegistry()

	// Every emoji maps to the generation's role id, so a reader that sees
	// two different ids for one generation observed a partial mapping.
	emojis := []domain.Emoji{"🔥", "💧", "🌱", "⚡", "❄️"}
	generation := func(n int) domain.ReactionRoles {
		roles := make(domain.ReactionRoles, len(emojis))
		for _, e := range emojis {
			roles[e] = snowflake.ID(n)
		}
		return roles
	}

	if err := reg.Replace(ctx, generation(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for n := 2; n <= 200; n++ {
			if err := reg.Replace(ctx, generation(n)); err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
		}
	}()

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				current := snapshot(reg)
				first := current[emojis[0]]
				for _, e := range emojis {
					if current[e] != first {
						t.Errorf("observed mixed generations: %v", current)
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}
