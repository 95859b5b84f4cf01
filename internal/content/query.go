// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package content

import (
	"fmt"
	"strings"
)

// QueryBuilder assembles a document query from structured parts and renders
// it to query-language text at the boundary. It replaces fragile hand
// concatenation for the common shapes the facade needs; free-form query text
// remains possible through Gateway.FilterClause.
type QueryBuilder struct {
	docType    string
	predicates []string
	order      []string
	slice      string
	projection string
}

// Query starts a builder for documents of the given type.
func Query(docType string) *QueryBuilder {
	return &QueryBuilder{docType: docType}
}

// Where conjoins a predicate. The predicate references parameters by $name;
// values travel in the parameter set, never in the text.
func (b *QueryBuilder) Where(predicate string) *QueryBuilder {
	b.predicates = append(b.predicates, predicate)
	return b
}

// Scope conjoins the gateway's tenant predicate, if any.
func (b *QueryBuilder) Scope(g *Gateway) *QueryBuilder {
	if clause := g.FilterClause(); clause != "" {
		b.predicates = append(b.predicates, strings.TrimPrefix(clause, "&& "))
	}
	return b
}

// OrderBy appends an ordering directive (e.g. "publicationDate desc").
// Ordering is always delegated to the store.
func (b *QueryBuilder) OrderBy(directive string) *QueryBuilder {
	b.order = append(b.order, directive)
	return b
}

// First marks the query single-shaped: it returns at most one document.
func (b *QueryBuilder) First() *QueryBuilder {
	b.slice = "[0]"
	return b
}

// Limit keeps the first n documents.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.slice = fmt.Sprintf("[0...%d]", n)
	return b
}

// Project sets the field projection (without braces).
func (b *QueryBuilder) Project(fields string) *QueryBuilder {
	b.projection = fields
	return b
}

// Kind reports the result shape the built query will have.
func (b *QueryBuilder) Kind() Kind {
	if b.slice == "[0]" {
		return KindSingle
	}
	return KindList
}

// Build renders the query text.
func (b *QueryBuilder) Build() string {
	var sb strings.Builder
	sb.WriteString(`*[_type == "` + b.docType + `"`)
	for _, p := range b.predicates {
		sb.WriteString(" && " + p)
	}
	sb.WriteString("]")
	if len(b.order) > 0 {
		sb.WriteString(" | order(" + strings.Join(b.order, ", ") + ")")
	}
	if b.slice != "" {
		sb.WriteString(" " + b.slice)
	}
	if b.projection != "" {
		sb.WriteString("{" + b.projection + "}")
	}
	return sb.String()
}
