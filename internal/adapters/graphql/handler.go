package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler wraps the schema in an HTTP handler. GET serves GraphiQL for
// poking at the API; POST executes queries with the request context, which
// carries the viewer set by the middleware.
func NewHandler(schema *graphql.Schema) http.Handler {
	return handler.New(&handler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	})
}
