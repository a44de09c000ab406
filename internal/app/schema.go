package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"frenetic/internal/types"
)

// DescribeSchema lists the namespaces of the API schema with their
// property names.  With req.Namespace set only that namespace is
// described, and a missing definition is an error.
func (s Service) DescribeSchema(ctx context.Context, req SchemaRequest) (SchemaResult, error) {
	if req.Client == nil {
		return SchemaResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("api client is required")
	}
	doc, err := req.Client.Schema.Document(ctx)
	if err != nil {
		return SchemaResult{}, err
	}
	namespaces := doc.Namespaces()
	if req.Namespace != "" {
		if _, ok := doc.Descriptor(req.Namespace); !ok {
			return SchemaResult{}, types.MissingSchemaDefinitionError(req.Namespace)
		}
		namespaces = []string{req.Namespace}
	}
	result := SchemaResult{}
	for _, namespace := range namespaces {
		descriptor, ok := doc.Descriptor(namespace)
		if !ok {
			continue
		}
		entry := SchemaNamespace{
			Namespace:  namespace,
			Properties: descriptor.Names(),
		}
		if link, ok := doc.MemberLink(namespace); ok {
			entry.MemberLink = link.Href
		}
		result.Namespaces = append(result.Namespaces, entry)
	}
	return result, nil
}
