package cli

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"frenetic/internal/app"
)

type schemaOptions struct {
	Format string
	Stats  bool
}

func newSchemaCommand(root *RootConfig) *cobra.Command {
	opts := schemaOptions{}
	cmd := &cobra.Command{
		Use:   "schema [namespace]",
		Short: "List the namespaces and properties the API schema declares",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace := ""
			if len(args) == 1 {
				namespace = args[0]
			}
			return runSchema(cmd, root, opts, namespace)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "text", "Output format: text or yaml")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Print request counters to stderr")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func runSchema(cmd *cobra.Command, root *RootConfig, opts schemaOptions, namespace string) error {
	format := strings.ToLower(resolveString(cmd, opts.Format, "format", "format"))
	if format != "text" && format != "yaml" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported format: " + format)
	}
	service, reg := newAppService(root)
	client, err := service.Connect(root.Connection.request(cmd))
	if err != nil {
		return err
	}
	result, err := service.DescribeSchema(cmd.Context(), app.SchemaRequest{
		Client:    client,
		Namespace: namespace,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode schema").
				WithCause(err)
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	default:
		for _, entry := range result.Namespaces {
			fmt.Fprintf(out, "%s: %s\n", entry.Namespace, strings.Join(entry.Properties, ", "))
			if entry.MemberLink != "" {
				fmt.Fprintf(out, "  link: %s\n", entry.MemberLink)
			}
		}
	}
	if opts.Stats {
		return writeStats(cmd.ErrOrStderr(), reg)
	}
	return nil
}
