package actions

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"
)

func writeArgs(w io.Writer, resp *ArgsResponse, format string) error {
	var b []byte
	var err error
	switch strings.ToLower(format) {
	case OutputFormatLines:
		lines := resp.Args
		if resp.ToolClass != "" {
			lines = append([]string{resp.ToolClass}, lines...)
		}
		for _, l := range lines {
			if _, err = fmt.Fprintln(w, l); err != nil {
				return err
			}
		}
		return nil
	case OutputFormatJson:
		b, err = json.MarshalIndent(resp, "", "  ")
		b = append(b, '\n')
	case OutputFormatYaml:
		b, err = yaml.Marshal(resp)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "unable to marshal TDCH arguments")
	}
	_, err = w.Write(b)
	return err
}
