package ports

import (
	"context"
	"encoding/json"
)

type GraphQLPort interface {
	Execute(ctx context.Context, query string) (map[string]json.RawMessage, error)
}
