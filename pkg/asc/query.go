package asc

import (
	"net/url"
	"strconv"
	"strings"
)

// QueryPair is one key/value of a query string.
type QueryPair struct {
	Key   string
	Value string
}

// QueryPairs is an ordered list of query parameters. Order is preserved on
// the wire so request URLs are reproducible.
type QueryPairs []QueryPair

// Encode renders the pairs as a query string in list order.
func (p QueryPairs) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var builder strings.Builder

	for i, pair := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(pair.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(pair.Value))
	}

	return builder.String()
}

// Values converts the pairs to url.Values. Ordering is lost.
func (p QueryPairs) Values() url.Values {
	values := url.Values{}
	for _, pair := range p {
		values.Add(pair.Key, pair.Value)
	}

	return values
}

// Keys returns the keys in order.
func (p QueryPairs) Keys() []string {
	keys := make([]string, 0, len(p))
	for _, pair := range p {
		keys = append(keys, pair.Key)
	}

	return keys
}

// ParseQueryPairs parses a raw query string keeping the original order.
func ParseQueryPairs(rawQuery string) (QueryPairs, error) {
	var pairs QueryPairs

	for _, part := range strings.Split(rawQuery, "&") {
		if part == "" {
			continue
		}

		key, value, _ := strings.Cut(part, "=")

		unescapedKey, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}

		unescapedValue, err := url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, QueryPair{Key: unescapedKey, Value: unescapedValue})
	}

	return pairs, nil
}

// pairBuilder accumulates present fields of a query struct.
type pairBuilder struct {
	pairs QueryPairs
}

func (b *pairBuilder) text(key string, value *string) {
	if value != nil {
		b.pairs = append(b.pairs, QueryPair{Key: key, Value: *value})
	}
}

func (b *pairBuilder) integer(key string, value *int64) {
	if value != nil {
		b.pairs = append(b.pairs, QueryPair{Key: key, Value: strconv.FormatInt(*value, 10)})
	}
}

func enumPair[T ~string](b *pairBuilder, key string, value *T) {
	if value != nil {
		b.pairs = append(b.pairs, QueryPair{Key: key, Value: string(*value)})
	}
}

func (b *pairBuilder) build() QueryPairs {
	return b.pairs
}
