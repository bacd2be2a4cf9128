package cli

import (
	"strings"

	"github.com/runoshun/task-cli/internal/domain"
	"github.com/spf13/pflag"
)

// statusValue is a pflag.Value accepting status keywords.
type statusValue struct {
	status *domain.Status
}

var _ pflag.Value = (*statusValue)(nil)

func (v *statusValue) String() string {
	if v.status == nil || *v.status == "" {
		return ""
	}
	return v.status.Keyword()
}

func (v *statusValue) Set(s string) error {
	status, err := domain.ParseStatus(s)
	if err != nil {
		return err
	}
	*v.status = status
	return nil
}

func (v *statusValue) Type() string {
	return "status"
}

// formatValue is a pflag.Value accepting output format names.
type formatValue struct {
	format *domain.OutputFormat
}

var _ pflag.Value = (*formatValue)(nil)

func (v *formatValue) String() string {
	if v.format == nil {
		return ""
	}
	return string(*v.format)
}

func (v *formatValue) Set(s string) error {
	format, err := domain.ParseOutputFormat(strings.ToLower(s))
	if err != nil {
		return err
	}
	*v.format = format
	return nil
}

func (v *formatValue) Type() string {
	return "format"
}

func formatNames() string {
	formats := domain.AllOutputFormats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}
