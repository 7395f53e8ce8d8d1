package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/abdul-hamid-achik/hitclient/packages/core/config"
	"github.com/abdul-hamid-achik/hitclient/packages/http"
	"github.com/abdul-hamid-achik/hitclient/packages/log"
	"github.com/abdul-hamid-achik/hitclient/packages/output"
	"github.com/spf13/cobra"
)

var requestCmd = &cobra.Command{
	Use:   "request [path]",
	Short: "Send a request relative to the base URL",
	Long: `Send a single request and print the decoded response.

Examples:
  hitclient request /health --base-url http://localhost:3000
  hitclient request /users -X POST -d '{"name":"ann"}'
  hitclient request /login -X POST --form -d 'user=ann&pass=secret'
  hitclient request /search -q term=go -q page=2 --only-payload -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: requestCommand,
}

var (
	baseURLFlag     string
	methodFlag      string
	headerFlags     []string
	queryFlags      []string
	dataFlag        string
	formFlag        bool
	onlyPayloadFlag bool
	configFlag      string
	transportFlag   string
	logLevelFlag    string
	logBackendFlag  string
	logFormatFlag   string
	outputFlag      string
	verboseFlag     bool
	noColorFlag     bool
	failFlag        bool
)

func init() {
	requestCmd.Flags().StringVar(&baseURLFlag, "base-url", getEnvString("HITCLIENT_BASE_URL", ""), "Base URL prepended to the path (env: HITCLIENT_BASE_URL)")
	requestCmd.Flags().StringVarP(&methodFlag, "method", "X", "GET", "Request method")
	requestCmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, `Request header as "Key: Value" (repeatable)`)
	requestCmd.Flags().StringArrayVarP(&queryFlags, "query", "q", nil, `Query parameter as "key=value" (repeatable)`)
	requestCmd.Flags().StringVarP(&dataFlag, "data", "d", "", "Request body: JSON, or key=value pairs with --form")
	requestCmd.Flags().BoolVar(&formFlag, "form", false, "Send the body as form data")
	requestCmd.Flags().BoolVar(&onlyPayloadFlag, "only-payload", false, "Print only the decoded body")
	requestCmd.Flags().StringVar(&configFlag, "config", getEnvString("HITCLIENT_CONFIG", ""), "Path to config file (env: HITCLIENT_CONFIG)")
	requestCmd.Flags().StringVar(&transportFlag, "transport", getEnvString("HITCLIENT_TRANSPORT", ""), "Transport: net or resty (env: HITCLIENT_TRANSPORT)")
	requestCmd.Flags().StringVar(&logLevelFlag, "log-level", getEnvString("HITCLIENT_LOG_LEVEL", ""), "Log level (env: HITCLIENT_LOG_LEVEL)")
	requestCmd.Flags().StringVar(&logBackendFlag, "log-backend", getEnvString("HITCLIENT_LOG_BACKEND", ""), "Log backend: zerolog, zap or none (env: HITCLIENT_LOG_BACKEND)")
	requestCmd.Flags().StringVar(&logFormatFlag, "log-format", getEnvString("HITCLIENT_LOG_FORMAT", ""), "Log format: console or json (env: HITCLIENT_LOG_FORMAT)")
	requestCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("HITCLIENT_OUTPUT", "console"), "Output format: console or json (env: HITCLIENT_OUTPUT)")
	requestCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print response headers")
	requestCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("HITCLIENT_NO_COLOR", false), "Disable colored output (env: HITCLIENT_NO_COLOR)")
	requestCmd.Flags().BoolVar(&failFlag, "fail", false, "Exit with code 1 on error statuses")
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func requestCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadRequestConfig(cmd)
	if err != nil {
		return &exitError{code: ExitConfigError, err: err}
	}

	opts, err := buildRequestOptions(args)
	if err != nil {
		return &exitError{code: ExitUsageError, err: err}
	}

	formatter, err := newFormatter(cmd)
	if err != nil {
		return &exitError{code: ExitUsageError, err: err}
	}

	client, err := newClient(cmd, cfg)
	if err != nil {
		return &exitError{code: ExitConfigError, err: err}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result := client.Request(ctx, opts)
	if err := formatter.FormatResult(result); err != nil {
		return err
	}

	switch r := result.(type) {
	case *http.Failure:
		return &exitError{code: ExitNetworkError, err: r, silent: true}
	case *http.Envelope:
		if failFlag && (r.IsClientError() || r.IsServerError()) {
			return &exitError{code: ExitHTTPError, err: fmt.Errorf("%s", r.Status), silent: true}
		}
	}
	return nil
}

// loadRequestConfig layers command line flags over the config file.
func loadRequestConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		return nil, err
	}

	overrides := &config.Config{
		BaseURL:    baseURLFlag,
		Transport:  transportFlag,
		LogBackend: logBackendFlag,
		LogLevel:   logLevelFlag,
		LogFormat:  logFormatFlag,
	}
	if cmd.Flags().Changed("only-payload") {
		overrides.OnlyPayload = config.BoolPtr(onlyPayloadFlag)
	}

	cfg = cfg.Merge(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildRequestOptions(args []string) (http.RequestOptions, error) {
	opts := http.RequestOptions{
		Method:     methodFlag,
		IsFormData: formFlag,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	}

	headers, err := parseHeaders(headerFlags)
	if err != nil {
		return opts, err
	}
	opts.Headers = headers

	query, err := parseQuery(queryFlags)
	if err != nil {
		return opts, err
	}
	opts.Query = query

	body, err := parseBody(dataFlag, formFlag)
	if err != nil {
		return opts, err
	}
	opts.Body = body

	return opts, nil
}

func parseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q (expected \"Key: Value\")", v)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}

func parseQuery(values []string) (map[string]any, error) {
	query := make(map[string]any, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid query parameter %q (expected \"key=value\")", v)
		}
		query[key] = value
	}
	return query, nil
}

// parseBody returns nil for an empty body so the client applies its
// default. Form bodies are passed through verbatim.
func parseBody(data string, form bool) (any, error) {
	if data == "" {
		return nil, nil
	}
	if form {
		return data, nil
	}
	if !json.Valid([]byte(data)) {
		return nil, fmt.Errorf("request body is not valid JSON (use --form for form data)")
	}
	return json.RawMessage(data), nil
}

func newFormatter(cmd *cobra.Command) (output.Formatter, error) {
	switch outputFlag {
	case "console":
		return output.NewConsoleFormatter(
			output.WithWriter(cmd.OutOrStdout()),
			output.WithVerbose(verboseFlag),
			output.WithNoColor(noColorFlag),
		), nil
	case "json":
		return output.NewJSONFormatter(output.JSONWithWriter(cmd.OutOrStdout())), nil
	}
	return nil, fmt.Errorf("unknown output format %q (expected console or json)", outputFlag)
}

func newClient(cmd *cobra.Command, cfg *config.Config) (*http.Client, error) {
	logger, err := log.NewLogger(cfg.LogBackend, cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	var transport http.Transport
	switch cfg.Transport {
	case config.TransportResty:
		transport = http.NewRestyTransport(nil)
	default:
		transport = http.NewNetTransport()
	}

	return http.NewClient(
		http.WithBaseURL(cfg.BaseURL),
		http.WithBaseHeaders(cfg.BaseHeaders),
		http.WithOnlyPayload(cfg.GetOnlyPayload()),
		http.WithTransport(transport),
		http.WithLogger(logger),
	), nil
}
