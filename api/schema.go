package api

import (
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const handlersPkg = "github.com/carson-networks/finance-tracker/internal/handlers/"

// schemaName names handler schemas after their package as well as their type,
// since packages like named and transaction both declare a CreateBody. Names
// that already carry the package, such as budget.CreateBudgetBody, are kept.
func schemaName(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || !strings.HasPrefix(t.PkgPath(), handlersPkg) {
		return name
	}

	pkg := path.Base(t.PkgPath())
	prefix := strings.ToUpper(pkg[:1]) + pkg[1:]
	if strings.Contains(name, strings.TrimSuffix(prefix, "s")) {
		return name
	}
	return prefix + name
}
