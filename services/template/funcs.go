package template

import (
	"fmt"
	"html/template"
)

var funcs = template.FuncMap{
	"pluralize": pluralize,
}

func pluralize(n int, one string, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
