package cli

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"frenetic/internal/app"
	"frenetic/internal/core"
)

type getOptions struct {
	Namespace string
	TypeName  string
	Embedded  []string
	Stats     bool
}

func newGetCommand(root *RootConfig) *cobra.Command {
	opts := getOptions{}
	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Fetch a resource and print it as its schema sees it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd, root, opts, args[0])
		},
	}
	cmd.Flags().StringVar(&opts.Namespace, "namespace", "", "Schema namespace of the resource")
	cmd.Flags().StringVar(&opts.TypeName, "type", "", "Qualified type name (default derived from namespace)")
	cmd.Flags().StringSliceVar(&opts.Embedded, "embed", nil, "Additional namespaces to register for embedded relations")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Print request counters to stderr")
	return cmd
}

func runGet(cmd *cobra.Command, root *RootConfig, opts getOptions, path string) error {
	namespace := strings.TrimSpace(opts.Namespace)
	if namespace == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--namespace is required")
	}
	service, reg := newAppService(root)
	client, err := service.Connect(root.Connection.request(cmd))
	if err != nil {
		return err
	}

	registry := service.NewRegistry()
	typeName := strings.TrimSpace(opts.TypeName)
	if typeName == "" {
		typeName = typeNameFor("", namespace)
	}
	rt, err := service.Register(registry, app.RegisterRequest{
		Name:      typeName,
		Namespace: namespace,
		Client:    client,
	})
	if err != nil {
		return err
	}
	qualifier := core.Deconstantize(typeName)
	for _, embedded := range opts.Embedded {
		embedded = strings.TrimSpace(embedded)
		if embedded == "" {
			continue
		}
		if _, err := service.Register(registry, app.RegisterRequest{
			Name:      typeNameFor(qualifier, embedded),
			Namespace: embedded,
			Client:    client,
		}); err != nil {
			return err
		}
	}

	res, err := service.Fetch(cmd.Context(), rt, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Inspect())
	if opts.Stats {
		return writeStats(cmd.ErrOrStderr(), reg)
	}
	return nil
}

func typeNameFor(qualifier string, namespace string) string {
	name := strcase.ToCamel(namespace)
	if qualifier == "" {
		return name
	}
	return qualifier + "." + name
}
