package app

import (
	"context"
	"testing"

	"github.com/adityarama/shopfront/internal/cart/domain"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	svc, orders := newTestService()
	ctx := context.Background()

	const N = 100
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := svc.Mutate(ctx, "user-1", "blue-shirt", domain.OpAdd)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent add failed: %v", err)
	}

	cart, err := svc.GetCart(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	line, ok := cart.Line("blue-shirt")
	if !ok {
		t.Fatal("expected blue-shirt in cart")
	}
	if line.Quantity != N {
		t.Fatalf("expected quantity=%d, got=%d", N, line.Quantity)
	}
	if got := orders.activeOrders("user-1"); got != 1 {
		t.Fatalf("expected exactly 1 active order, got %d", got)
	}
}
