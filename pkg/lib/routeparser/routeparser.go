package routeparser

import (
	"errors"
	"strconv"
	"strings"
)

// Route is a parsed command path such as /restaurants/3 or /cart/add.
type Route struct {
	Parts []string
}

func Parse(path string) Route {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return Route{}
	}
	return Route{Parts: strings.Split(trimmed, "/")}
}

func (r Route) Len() int {
	return len(r.Parts)
}

func (r Route) At(i int) string {
	if i < 0 || i >= len(r.Parts) {
		return ""
	}
	return r.Parts[i]
}

func (r Route) Int(i int) (int, error) {
	part := r.At(i)
	id, err := strconv.Atoi(part)
	if err != nil {
		return 0, errors.New("invalid path segment, must be int")
	}
	return id, nil
}

func (r Route) String() string {
	return "/" + strings.Join(r.Parts, "/")
}
