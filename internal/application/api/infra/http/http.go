package http

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// QueryError is returned when the request carries query parameters the endpoint does not accept.
type QueryError struct {
	Keys []string
}

func (e QueryError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, key := range e.Keys {
		quoted[i] = fmt.Sprintf("'%s'", key)
	}
	return "invalid query " + strings.Join(quoted, ", ")
}

// CheckQuery return a QueryError listing, in order, every key not present at accepted.
func CheckQuery(query url.Values, accepted ...string) error {
	allowed := make(map[string]struct{}, len(accepted))
	for _, key := range accepted {
		allowed[key] = struct{}{}
	}

	var keys []string
	for key := range query {
		if _, ok := allowed[key]; !ok {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)
	return QueryError{Keys: keys}
}
