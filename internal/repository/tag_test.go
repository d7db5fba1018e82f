package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivelichko/pennywise/internal/model"
)

func dropTags(t *testing.T, ctx context.Context) {
	t.Helper()
	err := mongoCli.Database(testDB).Collection("tags").Drop(ctx)
	if err != nil {
		t.Fatal(err)
	}
}

func seedTags(t *testing.T, ctx context.Context, names ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(names))
	for i, name := range names {
		id, err := tagRepo.Create(ctx, &model.Tag{
			Name:  name,
			Icon:  "other",
			Color: "gray",
			Order: i,
		})
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestTags_CreateAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer dropTags(t, ctx)

	ids := seedTags(t, ctx, "Food", "Transport", "Home")

	tags, err := tagRepo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 3, len(tags))
	for i, tag := range tags {
		require.Equal(t, ids[i], tag.ID)
		require.Equal(t, i, tag.Order)
	}
}

func TestTags_Reorder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer dropTags(t, ctx)

	ids := seedTags(t, ctx, "Food", "Transport", "Home", "Fun")

	// move the last tag to the front
	err := tagRepo.Reorder(ctx, map[string]int{
		ids[3]: 0,
		ids[0]: 1,
		ids[1]: 2,
		ids[2]: 3,
	})
	if err != nil {
		t.Fatal(err)
	}

	tags, err := tagRepo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 4, len(tags))
	require.Equal(t, "Fun", tags[0].Name)
	require.Equal(t, "Food", tags[1].Name)
	require.Equal(t, "Transport", tags[2].Name)
	require.Equal(t, "Home", tags[3].Name)
	for i, tag := range tags {
		require.Equal(t, i, tag.Order)
	}
}

func TestTags_UpdateDelete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer dropTags(t, ctx)

	ids := seedTags(t, ctx, "Food")

	err := tagRepo.Update(ctx, &model.Tag{
		ID:    ids[0],
		Name:  "Groceries",
		Icon:  "shopping",
		Color: "green",
		Order: 0,
	})
	if err != nil {
		t.Fatal(err)
	}

	tags, err := tagRepo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, len(tags))
	require.Equal(t, "Groceries", tags[0].Name)
	require.Equal(t, "shopping", tags[0].Icon)

	if err = tagRepo.Delete(ctx, ids[0]); err != nil {
		t.Fatal(err)
	}
	require.ErrorIs(t, tagRepo.Delete(ctx, ids[0]), ErrNotFound)
}
