package logs

import (
	"log/slog"
	"os"
	"strings"

	"bazaar/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process-wide slog.Logger. JSON output is the default; the
// pretty flag switches to the text handler and adds source locations for
// local development.
func New(params Params) (*slog.Logger, error) {
	level, err := parseLogLevel(params.Config.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	if params.Config.Env.Log.Pretty {
		opts := &slog.HandlerOptions{Level: level, AddSource: true}

		return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With(slog.String("service", "bazaar")), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return slog.LevelInfo, errors.Wrapf(err, "unknown log level: %s", level)
	}

	return parsed, nil
}
