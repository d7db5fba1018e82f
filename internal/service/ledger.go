package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ivelichko/pennywise/internal/model"
	"github.com/ivelichko/pennywise/internal/repository"
)

var (
	ErrUnknownTag   = errors.New("tag does not exist")
	ErrDuplicateTag = errors.New("tag name already taken")
)

// Ledger owns the session's view of every collection and is the only write
// path to it. Adds and updates apply speculatively before the store confirms;
// deletes confirm first because a removal can't be taken back visually.
// Store calls run outside the mutex, so mutations on different records
// proceed independently. Mutations racing on the same record are resolved by
// per-record sequence numbers: a reply may only roll back state whose
// sequence still matches what it captured, so stale replies lose.
type Ledger struct {
	validate *validator.Validate

	txStore        repository.TransactionStore
	tagStore       repository.TagStore
	incomeStore    repository.LineStore
	recurringStore repository.LineStore

	mu        sync.Mutex
	txs       *collection[model.Transaction]
	tags      *collection[model.Tag]
	incomes   *collection[model.Line]
	recurring *collection[model.Line]

	pageSize int
	offset   int
	drained  bool

	editDelay time.Duration
	edits     map[string]*Debouncer
}

func NewLedger(validate *validator.Validate, txStore repository.TransactionStore, tagStore repository.TagStore,
	incomeStore, recurringStore repository.LineStore, pageSize int, editDelay time.Duration) *Ledger {
	return &Ledger{
		validate:       validate,
		txStore:        txStore,
		tagStore:       tagStore,
		incomeStore:    incomeStore,
		recurringStore: recurringStore,
		txs:            newCollection(func(t model.Transaction) string { return t.ID }),
		tags:           newCollection(func(t model.Tag) string { return t.ID }),
		incomes:        newCollection(func(l model.Line) string { return l.ID }),
		recurring:      newCollection(func(l model.Line) string { return l.ID }),
		pageSize:       pageSize,
		editDelay:      editDelay,
		edits:          make(map[string]*Debouncer),
	}
}

// Load warms the ledger up from the store: tags, incomes, recurring expenses
// and the first transaction page.
func (l *Ledger) Load(ctx context.Context) error {
	tags, err := l.tagStore.All(ctx)
	if err != nil {
		return fmt.Errorf("ledger couldn't load tags: %w", err)
	}
	incomes, err := l.incomeStore.All(ctx)
	if err != nil {
		return fmt.Errorf("ledger couldn't load incomes: %w", err)
	}
	recurring, err := l.recurringStore.All(ctx)
	if err != nil {
		return fmt.Errorf("ledger couldn't load recurring expenses: %w", err)
	}

	l.mu.Lock()
	l.tags.appendIfAbsent(tags...)
	l.incomes.appendIfAbsent(incomes...)
	l.recurring.appendIfAbsent(recurring...)
	l.mu.Unlock()

	return l.LoadMoreTransactions(ctx)
}

// LoadMoreTransactions fetches the next page of confirmed transactions and
// appends it. Any short page marks the collection exhausted, which misreads
// the case where the total count is an exact multiple of the page size; that
// behavior is intentional until product says otherwise.
func (l *Ledger) LoadMoreTransactions(ctx context.Context) error {
	l.mu.Lock()
	if l.drained {
		l.mu.Unlock()
		return nil
	}
	offset := l.offset
	l.mu.Unlock()

	page, err := l.txStore.Page(ctx, offset, l.pageSize)
	if err != nil {
		return fmt.Errorf("ledger couldn't load transactions page: %w", err)
	}

	l.mu.Lock()
	l.txs.appendIfAbsent(page...)
	l.offset += len(page)
	if len(page) < l.pageSize {
		l.drained = true
	}
	l.mu.Unlock()
	return nil
}

func (l *Ledger) HasMoreTransactions() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.drained
}

// Transactions returns a copy sorted by date descending; same-instant entries
// keep most-recently-added first.
func (l *Ledger) Transactions() []model.Transaction {
	l.mu.Lock()
	out := l.txs.values()
	l.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// AddTransaction shows the draft immediately under a temporary ID, then
// reconciles it with the store: the confirmed entry replaces the speculative
// one, or the speculative one disappears on failure. No automatic retry.
func (l *Ledger) AddTransaction(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	draft.Kind = model.KindExpense
	if draft.Date.IsZero() {
		draft.Date = time.Now().UTC()
	}
	if err := l.validate.Struct(draft); err != nil {
		return model.Transaction{}, err
	}

	l.mu.Lock()
	if !l.tagKnownLocked(draft.Tag) {
		l.mu.Unlock()
		return model.Transaction{}, ErrUnknownTag
	}
	tempID := uuid.New().String()
	draft.ID = tempID
	l.txs.prependPending(tempID, draft)
	l.mu.Unlock()

	id, err := l.txStore.Create(ctx, &draft)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.txs.drop(tempID)
		return model.Transaction{}, fmt.Errorf("ledger couldn't create transaction: %w", err)
	}
	draft.ID = id
	l.txs.confirm(tempID, draft)
	return draft, nil
}

// UpdateTransaction replaces the member in place, then asks the store. On
// failure the prior value is restored verbatim unless a newer local write
// superseded this one in the meantime.
func (l *Ledger) UpdateTransaction(ctx context.Context, tx model.Transaction) error {
	tx.Kind = model.KindExpense
	if err := l.validate.Struct(tx); err != nil {
		return err
	}

	l.mu.Lock()
	prev, seq, ok := l.txs.replace(tx)
	l.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}

	if err := l.txStore.Update(ctx, &tx); err != nil {
		l.mu.Lock()
		l.txs.restore(tx.ID, prev, seq)
		l.mu.Unlock()
		return fmt.Errorf("ledger couldn't update transaction: %w", err)
	}
	return nil
}

// QueueTransactionUpdate coalesces rapid inline edits of one transaction into
// a single store commit once no edit arrived for a full quiescence window.
func (l *Ledger) QueueTransactionUpdate(tx model.Transaction) {
	l.mu.Lock()
	d, ok := l.edits[tx.ID]
	if !ok {
		d = NewDebouncer(l.editDelay)
		l.edits[tx.ID] = d
	}
	l.mu.Unlock()

	d.Call(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := l.UpdateTransaction(ctx, tx); err != nil {
			logrus.Errorf("ledger couldn't commit debounced edit of %s: %v", tx.ID, err)
		}
	})
}

// DeleteTransaction asks the store first and removes the local entry only on
// confirmation. A failed delete leaves the collection untouched.
func (l *Ledger) DeleteTransaction(ctx context.Context, id string) error {
	l.mu.Lock()
	_, ok := l.txs.get(id)
	l.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}

	if err := l.txStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("ledger couldn't delete transaction: %w", err)
	}

	l.mu.Lock()
	l.txs.drop(id)
	l.mu.Unlock()
	return nil
}

// Tags returns a copy sorted by the explicit order field.
func (l *Ledger) Tags() []model.Tag {
	l.mu.Lock()
	out := l.tags.values()
	l.mu.Unlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (l *Ledger) AddTag(ctx context.Context, draft model.Tag) (model.Tag, error) {
	l.mu.Lock()
	for _, t := range l.tags.values() {
		if t.Name == draft.Name {
			l.mu.Unlock()
			return model.Tag{}, ErrDuplicateTag
		}
	}
	draft.Order = l.tags.len() // new tags go to the end of the user's ordering
	l.mu.Unlock()

	if err := l.validate.Struct(draft); err != nil {
		return model.Tag{}, err
	}

	l.mu.Lock()
	tempID := uuid.New().String()
	draft.ID = tempID
	l.tags.prependPending(tempID, draft)
	l.mu.Unlock()

	id, err := l.tagStore.Create(ctx, &draft)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.tags.drop(tempID)
		return model.Tag{}, fmt.Errorf("ledger couldn't create tag: %w", err)
	}
	draft.ID = id
	l.tags.confirm(tempID, draft)
	return draft, nil
}

func (l *Ledger) UpdateTag(ctx context.Context, tag model.Tag) error {
	if err := l.validate.Struct(tag); err != nil {
		return err
	}

	l.mu.Lock()
	prev, seq, ok := l.tags.replace(tag)
	l.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}

	if err := l.tagStore.Update(ctx, &tag); err != nil {
		l.mu.Lock()
		l.tags.restore(tag.ID, prev, seq)
		l.mu.Unlock()
		return fmt.Errorf("ledger couldn't update tag: %w", err)
	}
	return nil
}

// DeleteTag confirms with the store, drops the tag and closes the gap in the
// order sequence. Transactions referencing the tag are left alone; they read
// as uncategorized from now on. The compacted orders are persisted
// fire-and-forget.
func (l *Ledger) DeleteTag(ctx context.Context, id string) error {
	l.mu.Lock()
	_, ok := l.tags.get(id)
	l.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}

	if err := l.tagStore.Delete(ctx, id); err != nil {
		return fmt.Errorf("ledger couldn't delete tag: %w", err)
	}

	l.mu.Lock()
	l.tags.drop(id)
	orders := l.compactTagOrdersLocked()
	l.mu.Unlock()

	if len(orders) > 0 {
		if err := l.tagStore.Reorder(ctx, orders); err != nil {
			logrus.Errorf("ledger couldn't persist tag orders after delete: %v", err)
		}
	}
	return nil
}

// ReorderTags moves the tag to position pos and rewrites every affected order
// so the sequence stays a dense 0..N-1 permutation. A store failure rolls the
// whole move back.
func (l *Ledger) ReorderTags(ctx context.Context, id string, pos int) error {
	type undo struct {
		prev model.Tag
		seq  uint64
	}

	l.mu.Lock()
	sorted := l.sortedTagsLocked()
	from := -1
	for i, t := range sorted {
		if t.ID == id {
			from = i
			break
		}
	}
	if from < 0 {
		l.mu.Unlock()
		return repository.ErrNotFound
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= len(sorted) {
		pos = len(sorted) - 1
	}

	moved := sorted[from]
	sorted = append(sorted[:from], sorted[from+1:]...)
	sorted = append(sorted[:pos], append([]model.Tag{moved}, sorted[pos:]...)...)

	undos := make(map[string]undo)
	orders := make(map[string]int)
	for idx, t := range sorted {
		if t.Order == idx {
			continue
		}
		t.Order = idx
		prev, seq, _ := l.tags.replace(t)
		undos[t.ID] = undo{prev: prev, seq: seq}
		orders[t.ID] = idx
	}
	l.mu.Unlock()

	if len(orders) == 0 {
		return nil
	}
	if err := l.tagStore.Reorder(ctx, orders); err != nil {
		l.mu.Lock()
		for tagID, u := range undos {
			l.tags.restore(tagID, u.prev, u.seq)
		}
		l.mu.Unlock()
		return fmt.Errorf("ledger couldn't reorder tags: %w", err)
	}
	return nil
}

func (l *Ledger) Incomes() []model.Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.incomes.values()
}

func (l *Ledger) RecurringExpenses() []model.Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recurring.values()
}

func (l *Ledger) AddIncome(ctx context.Context, draft model.Line) (model.Line, error) {
	return l.addLine(ctx, l.incomes, l.incomeStore, draft, "income")
}

func (l *Ledger) UpdateIncome(ctx context.Context, line model.Line) error {
	return l.updateLine(ctx, l.incomes, l.incomeStore, line, "income")
}

func (l *Ledger) DeleteIncome(ctx context.Context, id string) error {
	return l.deleteLine(ctx, l.incomes, l.incomeStore, id, "income")
}

func (l *Ledger) AddRecurringExpense(ctx context.Context, draft model.Line) (model.Line, error) {
	return l.addLine(ctx, l.recurring, l.recurringStore, draft, "recurring expense")
}

func (l *Ledger) UpdateRecurringExpense(ctx context.Context, line model.Line) error {
	return l.updateLine(ctx, l.recurring, l.recurringStore, line, "recurring expense")
}

func (l *Ledger) DeleteRecurringExpense(ctx context.Context, id string) error {
	return l.deleteLine(ctx, l.recurring, l.recurringStore, id, "recurring expense")
}

// Summary aggregates the current state for now's calendar month.
func (l *Ledger) Summary(now time.Time) Summary {
	return BuildSummary(now, l.Transactions(), l.Tags(), l.Incomes(), l.RecurringExpenses())
}

func (l *Ledger) addLine(ctx context.Context, col *collection[model.Line], store repository.LineStore,
	draft model.Line, kind string) (model.Line, error) {
	if err := l.validate.Struct(draft); err != nil {
		return model.Line{}, err
	}

	l.mu.Lock()
	tempID := uuid.New().String()
	draft.ID = tempID
	col.prependPending(tempID, draft)
	l.mu.Unlock()

	id, err := store.Create(ctx, &draft)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		col.drop(tempID)
		return model.Line{}, fmt.Errorf("ledger couldn't create %s: %w", kind, err)
	}
	draft.ID = id
	col.confirm(tempID, draft)
	return draft, nil
}

func (l *Ledger) updateLine(ctx context.Context, col *collection[model.Line], store repository.LineStore,
	line model.Line, kind string) error {
	if err := l.validate.Struct(line); err != nil {
		return err
	}

	l.mu.Lock()
	prev, seq, ok := col.replace(line)
	l.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}

	if err := store.Update(ctx, &line); err != nil {
		l.mu.Lock()
		col.restore(line.ID, prev, seq)
		l.mu.Unlock()
		return fmt.Errorf("ledger couldn't update %s: %w", kind, err)
	}
	return nil
}

func (l *Ledger) deleteLine(ctx context.Context, col *collection[model.Line], store repository.LineStore,
	id, kind string) error {
	l.mu.Lock()
	_, ok := col.get(id)
	l.mu.Unlock()
	if !ok {
		return repository.ErrNotFound
	}

	if err := store.Delete(ctx, id); err != nil {
		return fmt.Errorf("ledger couldn't delete %s: %w", kind, err)
	}

	l.mu.Lock()
	col.drop(id)
	l.mu.Unlock()
	return nil
}

func (l *Ledger) tagKnownLocked(name string) bool {
	for _, t := range l.tags.values() {
		if t.Name == name {
			return true
		}
	}
	return false
}

func (l *Ledger) sortedTagsLocked() []model.Tag {
	out := l.tags.values()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func (l *Ledger) compactTagOrdersLocked() map[string]int {
	orders := make(map[string]int)
	for idx, t := range l.sortedTagsLocked() {
		if t.Order == idx {
			continue
		}
		t.Order = idx
		l.tags.replace(t)
		orders[t.ID] = idx
	}
	return orders
}
