package asc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// SelfLinks carries the canonical URL of a resource or response.
type SelfLinks struct {
	Self string `json:"self" yaml:"self"`
}

// MetaLinks links a relationship to the owning resource and the related collection.
type MetaLinks struct {
	Self    string `json:"self"    yaml:"self"`
	Related string `json:"related" yaml:"related"`
}

// EntityResponse wraps a single resource.
type EntityResponse[T any] struct {
	Data  T         `json:"data"  yaml:"data"`
	Links SelfLinks `json:"links" yaml:"links"`
}

// UnmarshalJSON requires both the data and links members.
func (r *EntityResponse[T]) UnmarshalJSON(body []byte) error {
	if isJSONNull(body) {
		return ErrNullEnvelope
	}

	var envelope struct {
		Data  *T         `json:"data"`
		Links *SelfLinks `json:"links"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}

	switch {
	case envelope.Data == nil:
		return fmt.Errorf("%w: data", ErrMissingMember)
	case envelope.Links == nil:
		return fmt.Errorf("%w: links", ErrMissingMember)
	}

	r.Data = *envelope.Data
	r.Links = *envelope.Links

	return nil
}

// PageResponse is one page of a paginated collection.
type PageResponse[T any] struct {
	Data  []T       `json:"data"  yaml:"data"`
	Links PageLinks `json:"links" yaml:"links"`
	Meta  PageMeta  `json:"meta"  yaml:"meta"`
}

// UnmarshalJSON requires the data, links and meta members. An empty data
// array is a valid last page.
func (p *PageResponse[T]) UnmarshalJSON(body []byte) error {
	if isJSONNull(body) {
		return ErrNullEnvelope
	}

	var envelope struct {
		Data  *[]T       `json:"data"`
		Links *PageLinks `json:"links"`
		Meta  *PageMeta  `json:"meta"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}

	switch {
	case envelope.Data == nil:
		return fmt.Errorf("%w: data", ErrMissingMember)
	case envelope.Links == nil:
		return fmt.Errorf("%w: links", ErrMissingMember)
	case envelope.Meta == nil:
		return fmt.Errorf("%w: meta", ErrMissingMember)
	}

	p.Data = *envelope.Data
	p.Links = *envelope.Links
	p.Meta = *envelope.Meta

	return nil
}

func isJSONNull(body []byte) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}

// NextURL returns the absolute URL of the next page, or "" on the last page.
func (p *PageResponse[T]) NextURL() string {
	if p == nil || p.Links.Next == nil {
		return ""
	}

	return *p.Links.Next
}

// HasNext reports whether a further page exists.
func (p *PageResponse[T]) HasNext() bool {
	return p.NextURL() != ""
}

// PageLinks are the navigation links of a page. Next is absent on the last page.
type PageLinks struct {
	Self  string  `json:"self"            yaml:"self"`
	Next  *string `json:"next,omitempty"  yaml:"next,omitempty"`
	First *string `json:"first,omitempty" yaml:"first,omitempty"`
}

// PageMeta holds paging totals.
type PageMeta struct {
	Paging Paging `json:"paging" yaml:"paging"`
}

// Paging reports the collection total and the page size in effect.
type Paging struct {
	Total int64 `json:"total" yaml:"total"`
	Limit int64 `json:"limit" yaml:"limit"`
}

// RelationshipLinks is a to-one relationship exposing only links.
type RelationshipLinks struct {
	Links MetaLinks `json:"links" yaml:"links"`
}

// RelationshipPage is a to-many relationship with paging totals.
type RelationshipPage struct {
	Meta  *PageMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
	Links MetaLinks `json:"links"          yaml:"links"`
}

// ResourceIdentifier names another resource in a request payload.
type ResourceIdentifier struct {
	ID   string       `json:"id"   yaml:"id"`
	Type ResourceType `json:"type" yaml:"type"`
}

// ToOneData is a to-one relationship payload.
type ToOneData struct {
	Data ResourceIdentifier `json:"data" yaml:"data"`
}

// ToManyData is a to-many relationship payload.
type ToManyData struct {
	Data []ResourceIdentifier `json:"data" yaml:"data"`
}

// Identifiers builds a to-many payload of the given type from ids.
func Identifiers(resourceType ResourceType, ids ...string) ToManyData {
	data := make([]ResourceIdentifier, 0, len(ids))
	for _, id := range ids {
		data = append(data, ResourceIdentifier{ID: id, Type: resourceType})
	}

	return ToManyData{Data: data}
}
