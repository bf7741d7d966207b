package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/thoas/go-funk"
	"sigs.k8s.io/yaml"
)

const (
	tableFormat = "table"
	jsonFormat  = "json"
	yamlFormat  = "yaml"
)

var (
	legalOutputTypes = []string{tableFormat, jsonFormat, yamlFormat}
)

type GlobalOptions struct {
	Output string
}

func DefaultGlobalOptions() GlobalOptions {
	return GlobalOptions{
		Output: tableFormat,
	}
}

func (o *GlobalOptions) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *GlobalOptions) Validate(args []string) error {
	if len(o.Output) > 0 && !funk.Contains(legalOutputTypes, o.Output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

// print writes resource in the selected format. Table output is delegated
// to printTable.
func (o *GlobalOptions) print(w io.Writer, resource any, printTable func(io.Writer) error) error {
	switch o.Output {
	case jsonFormat:
		marshalled, err := json.MarshalIndent(resource, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", marshalled)
		return err
	case yamlFormat:
		marshalled, err := yaml.Marshal(resource)
		if err != nil {
			return fmt.Errorf("marshalling resource: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s", marshalled)
		return err
	default:
		return printTable(w)
	}
}
