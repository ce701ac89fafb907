package product

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	singleKeyPrefix = "product:"
	listKeyPrefix   = "products:list:"

	KeyKindSingle = "single"
	KeyKindList   = "list"
)

// Key describes a cache entry. Encode is pure: equal descriptors always
// produce the same string and distinct descriptors never share one.
type Key interface {
	Encode() string
	Kind() string
}

// SingleKey addresses one product by identifier
type SingleKey struct {
	ID string
}

func (k SingleKey) Encode() string {
	return singleKeyPrefix + k.ID
}

func (k SingleKey) Kind() string {
	return KeyKindSingle
}

// ListKey addresses one page of a filtered listing. Empty Category and
// Search mean the filter is absent.
type ListKey struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// NewListKey derives the key for a query, applying the same normalization
// the query itself receives.
func NewListKey(q ListQuery) ListKey {
	q.Normalize()
	return ListKey{
		Category: q.Category,
		Search:   q.Search,
		Page:     q.Page,
		Limit:    q.Limit,
	}
}

// Encode renders the present fields as a query string with sorted names
// and escaped values, so field order and separator characters inside
// values cannot change or collide the result.
func (k ListKey) Encode() string {
	values := url.Values{}
	values.Set("page", strconv.Itoa(k.Page))
	values.Set("limit", strconv.Itoa(k.Limit))
	if category := strings.TrimSpace(k.Category); category != "" {
		values.Set("category", category)
	}
	if search := strings.ToLower(strings.TrimSpace(k.Search)); search != "" {
		values.Set("search", search)
	}
	return listKeyPrefix + values.Encode()
}

func (k ListKey) Kind() string {
	return KeyKindList
}
