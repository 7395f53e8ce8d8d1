package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/abdul-hamid-achik/hitclient/packages/http"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithVerbose prints response headers as well
func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result http.Result) error {
	switch r := result.(type) {
	case *http.Envelope:
		f.formatEnvelope(r)
	case *http.Payload:
		fmt.Fprintln(f.writer, formatBody(r.Body))
	case *http.Failure:
		f.FormatError(r.Err)
	default:
		return fmt.Errorf("unsupported result type %T", result)
	}
	return nil
}

func (f *ConsoleFormatter) formatEnvelope(env *http.Envelope) {
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", f.statusColor(&env.Response)(env.Status), cyan(fmt.Sprintf("(%dms)", env.DurationMs())))

	if f.verbose && len(env.Headers) > 0 {
		keys := make([]string, 0, len(env.Headers))
		for k := range env.Headers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(f.writer, "%s: %s\n", bold(k), env.Headers[k])
		}
	}

	fmt.Fprintf(f.writer, "\n%s\n", bold(fmt.Sprintf("Body (%s):", env.Body.Format)))
	fmt.Fprintln(f.writer, formatBody(env.Body))
}

func (f *ConsoleFormatter) statusColor(resp *http.Response) func(a ...interface{}) string {
	switch {
	case resp.IsSuccess():
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	case resp.IsRedirect():
		return color.New(color.FgCyan, color.Bold).SprintFunc()
	case resp.IsClientError():
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case resp.IsServerError():
		return color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		return color.New(color.FgMagenta, color.Bold).SprintFunc()
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
