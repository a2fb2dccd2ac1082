package asc

import (
	"context"
	"fmt"
)

// PageFetcher fetches a page by the absolute URL found in links.next. Every
// resource client's ListByURL satisfies it.
type PageFetcher[T any] interface {
	ListByURL(ctx context.Context, pageURL string) (*PageResponse[T], error)
}

// PaginationOptions bounds a multi-page walk.
type PaginationOptions struct {
	// MaxPages caps the number of pages read, counting the first. Zero means no cap.
	MaxPages int
}

// DefaultPaginationOptions returns options without a page cap.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{}
}

// PaginationIterator yields the items of a collection one at a time,
// fetching further pages on demand.
type PaginationIterator[T any] struct {
	ctx     context.Context //nolint:containedctx // the iterator is bound to one walk
	fetcher PageFetcher[T]
	current *PageResponse[T]
	index   int
	err     error
}

// NewPaginationIterator starts an iterator at first, typically the result of
// a List call.
func NewPaginationIterator[T any](ctx context.Context, fetcher PageFetcher[T], first *PageResponse[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:     ctx,
		fetcher: fetcher,
		current: first,
	}
}

// HasNext reports whether Next will yield an item or an error. It may fetch
// the next page to find out.
func (it *PaginationIterator[T]) HasNext() bool {
	if it.err != nil {
		return true
	}

	for it.current != nil && it.index >= len(it.current.Data) {
		if !it.current.HasNext() {
			return false
		}

		page, err := it.fetcher.ListByURL(it.ctx, it.current.NextURL())
		if err != nil {
			it.err = fmt.Errorf("fetching next page: %w", err)

			return true
		}

		it.current = page
		it.index = 0
	}

	return it.current != nil
}

// Next returns the next item.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		return zero, ErrNoMoreItems
	}

	if it.err != nil {
		err := it.err
		it.err = nil
		it.current = nil

		return zero, err
	}

	item := it.current.Data[it.index]
	it.index++

	return item, nil
}

// All drains the iterator.
func (it *PaginationIterator[T]) All() ([]T, error) {
	var items []T

	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return items, err
		}

		items = append(items, item)
	}

	return items, nil
}

// ForEach calls fn for every remaining item, stopping at the first error.
func (it *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// FetchAllPages follows links.next from first and returns every item in
// page order.
func FetchAllPages[T any](ctx context.Context, fetcher PageFetcher[T], first *PageResponse[T], options *PaginationOptions) ([]T, error) {
	if first == nil {
		return nil, nil
	}

	if options == nil {
		options = DefaultPaginationOptions()
	}

	items := append([]T(nil), first.Data...)
	page := first
	pages := 1

	for page.HasNext() {
		if options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}

		err := ctx.Err()
		if err != nil {
			return items, fmt.Errorf("fetching page %d: %w", pages+1, err)
		}

		next, err := fetcher.ListByURL(ctx, page.NextURL())
		if err != nil {
			return items, fmt.Errorf("fetching page %d: %w", pages+1, err)
		}

		items = append(items, next.Data...)
		page = next
		pages++
	}

	return items, nil
}

// PageResult is one page delivered by StreamPages. Err is set on the final
// result when the walk failed.
type PageResult[T any] struct {
	Items []T
	Page  int
	Err   error
}

// StreamPages delivers pages on a channel as they are fetched. The channel is
// closed when the walk ends, fails, or ctx is cancelled.
func StreamPages[T any](ctx context.Context, fetcher PageFetcher[T], first *PageResponse[T], options *PaginationOptions) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	if options == nil {
		options = DefaultPaginationOptions()
	}

	go func() {
		defer close(results)

		send := func(result PageResult[T]) bool {
			select {
			case results <- result:
				return true
			case <-ctx.Done():
				return false
			}
		}

		page := first
		number := 1

		for page != nil {
			if !send(PageResult[T]{Items: page.Data, Page: number}) {
				return
			}

			if !page.HasNext() || (options.MaxPages > 0 && number >= options.MaxPages) {
				return
			}

			next, err := fetcher.ListByURL(ctx, page.NextURL())
			if err != nil {
				send(PageResult[T]{Page: number + 1, Err: fmt.Errorf("fetching page %d: %w", number+1, err)})

				return
			}

			page = next
			number++
		}
	}()

	return results
}
