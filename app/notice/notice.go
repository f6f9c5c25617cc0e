// Package notice renders message templates such as
// "{{player.name}} bought {{property.name}}" against a JSON scope.
package notice

import (
	"encoding/json"
	"regexp"

	"github.com/tidwall/gjson"
)

// Catalog looks message templates up by id.
type Catalog interface {
	Lookup(id string) (string, bool)
}

// Messages is a Catalog backed by a plain map.
type Messages map[string]string

func (m Messages) Lookup(id string) (string, bool) {
	msg, ok := m[id]
	return msg, ok
}

var token = regexp.MustCompile(`\{\{\s*([\w.-]+)\s*\}\}`)

// Render looks id up in catalog and fills every {{path}} token from scope.
// An unknown id renders as the id itself. Tokens whose path is missing
// from scope are left as written.
func Render(catalog Catalog, id string, scope interface{}) string {
	if catalog == nil {
		return id
	}
	tmpl, ok := catalog.Lookup(id)
	if !ok {
		return id
	}
	data, err := json.Marshal(scope)
	if err != nil {
		return tmpl
	}
	return token.ReplaceAllStringFunc(tmpl, func(m string) string {
		path := token.FindStringSubmatch(m)[1]
		res := gjson.GetBytes(data, path)
		if !res.Exists() {
			return m
		}
		return res.String()
	})
}
