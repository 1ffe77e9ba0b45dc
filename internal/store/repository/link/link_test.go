package link

import (
	"context"
	"fmt"
	"testing"

	"github.com/DDeenis/url-shortener-frontend/internal/store"
	"github.com/DDeenis/url-shortener-frontend/internal/store/testsuite"
)

func TestAddKeepsMostRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testsuite.NewStore(t))

	for i := 0; i < 5; i++ {
		link := store.NewShortLink("visitor", fmt.Sprintf("id%d", i), fmt.Sprintf("https://example.com/%d", i), fmt.Sprintf("http://sho.rt/s/id%d", i))
		if err := repo.Add(ctx, link, 3); err != nil {
			t.Fatalf("%+v", err)
		}
	}

	other := store.NewShortLink("other", "x", "https://example.org", "http://sho.rt/s/x")
	if err := repo.Add(ctx, other, 3); err != nil {
		t.Fatalf("%+v", err)
	}

	count, err := repo.Count(ctx, "visitor")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := int64(3), count; e != g {
		t.Errorf("count: expected %d, got %d", e, g)
	}

	links, err := repo.ListRecent(ctx, "visitor", 10)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	expected := []string{"id4", "id3", "id2"}
	if len(links) != len(expected) {
		t.Fatalf("len(links): expected %d, got %d", len(expected), len(links))
	}

	for i, id := range expected {
		if links[i].LinkID != id {
			t.Errorf("links[%d].LinkID: expected '%s', got '%s'", i, id, links[i].LinkID)
		}
	}
}
