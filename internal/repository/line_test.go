package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ivelichko/pennywise/internal/model"
)

func TestLines_SeparateCollections(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		for _, coll := range []string{CollectionIncomes, CollectionRecurring} {
			if err := mongoCli.Database(testDB).Collection(coll).Drop(ctx); err != nil {
				t.Fatal(err)
			}
		}
	}()

	_, err := incomeRepo.Create(ctx, &model.Line{Description: "salary", Amount: 500000})
	if err != nil {
		t.Fatal(err)
	}
	_, err = recurringRepo.Create(ctx, &model.Line{Description: "rent", Amount: 120000})
	if err != nil {
		t.Fatal(err)
	}

	incomes, err := incomeRepo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	recurring, err := recurringRepo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, len(incomes))
	require.Equal(t, 1, len(recurring))
	require.Equal(t, "salary", incomes[0].Description)
	require.Equal(t, "rent", recurring[0].Description)
}

func TestLines_UpdateDelete(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	defer func() {
		if err := mongoCli.Database(testDB).Collection(CollectionIncomes).Drop(ctx); err != nil {
			t.Fatal(err)
		}
	}()

	id, err := incomeRepo.Create(ctx, &model.Line{Description: "salary", Amount: 500000})
	if err != nil {
		t.Fatal(err)
	}

	err = incomeRepo.Update(ctx, &model.Line{ID: id, Description: "salary + bonus", Amount: 550000})
	if err != nil {
		t.Fatal(err)
	}

	lines, err := incomeRepo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, len(lines))
	require.Equal(t, int64(550000), lines[0].Amount)

	if err = incomeRepo.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	require.ErrorIs(t, incomeRepo.Delete(ctx, id), ErrNotFound)
}
