package queries

import (
	"errors"
	"strings"

	"loadboard/internal/pkg/guard"
)

var ErrGetAccessQueryIsNotConstructed = errors.New(
	"GetAccessQuery must be created via NewGetAccessQuery constructor",
)

// GetAccessQuery resolves a bearer token to the access of its identity. An empty
// token is allowed and resolves to an anonymous visitor.
type GetAccessQuery struct {
	token string
	guard guard.ConstructorGuard
}

func NewGetAccessQuery(token string) GetAccessQuery {
	return GetAccessQuery{token: strings.TrimSpace(token), guard: guard.NewConstructorGuard()}
}

func (q GetAccessQuery) Validate() error {
	return q.guard.Validate(ErrGetAccessQueryIsNotConstructed)
}

func (q GetAccessQuery) Token() string {
	return q.token
}
