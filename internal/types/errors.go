package types

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	msgSchemaUnavailable       = "schema unavailable: "
	msgMissingSchemaDefinition = "missing schema definition: "
	msgUndefinedResourceMock   = "undefined resource mock: "
	msgConfiguration           = "configuration error: "
)

// SchemaUnavailableError reports that the root schema document could not
// be fetched.  The failure is not cached; the next lookup fetches again.
func SchemaUnavailableError(rootPath string, cause error) error {
	err := errbuilder.New().
		WithCode(errbuilder.CodeUnavailable).
		WithMsg(msgSchemaUnavailable + rootPath)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}

// MissingSchemaDefinitionError reports a fetched schema without a usable
// entry for namespace.
func MissingSchemaDefinitionError(namespace string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msgMissingSchemaDefinition + namespace)
}

// UndefinedResourceMockError reports a test-mode construction for a type
// with no mock registered.
func UndefinedResourceMockError(namespace string, typeName string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%snamespace=%s type=%s", msgUndefinedResourceMock, namespace, typeName))
}

// ConfigurationError reports an unusable client configuration.
func ConfigurationError(msg string, cause error) error {
	err := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msgConfiguration + msg)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}

func IsSchemaUnavailable(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeUnavailable && hasMsgPrefix(err, msgSchemaUnavailable)
}

func IsMissingSchemaDefinition(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeNotFound && hasMsgPrefix(err, msgMissingSchemaDefinition)
}

func IsUndefinedResourceMock(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeFailedPrecondition && hasMsgPrefix(err, msgUndefinedResourceMock)
}

func IsConfigurationError(err error) bool {
	return err != nil && errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument && hasMsgPrefix(err, msgConfiguration)
}

func hasMsgPrefix(err error, prefix string) bool {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) {
		return strings.HasPrefix(builder.Msg, prefix)
	}
	return false
}
