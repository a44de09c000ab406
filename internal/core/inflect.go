package core

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
)

// typeSeparator splits a qualified resource type name into its prefix and
// the unqualified name ("shop.Order" -> "shop", "Order").
const typeSeparator = "."

// Demodulize strips the qualifier from a type name.
func Demodulize(typeName string) string {
	if idx := strings.LastIndex(typeName, typeSeparator); idx >= 0 {
		return typeName[idx+len(typeSeparator):]
	}
	return typeName
}

// Deconstantize returns the qualifier of a type name, or "" for an
// unqualified one.
func Deconstantize(typeName string) string {
	if idx := strings.LastIndex(typeName, typeSeparator); idx >= 0 {
		return typeName[:idx]
	}
	return ""
}

// DeriveNamespace computes the default namespace of a type: the
// unqualified name in singular lower snake case ("shop.OrderItems" ->
// "order_item").
func DeriveNamespace(typeName string) string {
	return inflection.Singular(strcase.ToSnake(Demodulize(typeName)))
}

// Classify turns a relation name into a type name ("order_items" ->
// "OrderItem").
func Classify(relation string) string {
	return strcase.ToCamel(inflection.Singular(strcase.ToSnake(relation)))
}

// EmbeddedTypeName is the registry name looked up for relation when it is
// embedded in a resource of type owner.
func EmbeddedTypeName(owner string, relation string) string {
	prefix := Deconstantize(owner)
	if prefix == "" {
		return Classify(relation)
	}
	return prefix + typeSeparator + Classify(relation)
}
