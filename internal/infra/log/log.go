// Package log build the application logger from the configuration.
package log

import (
	"fmt"
	"io"
	"os"

	base "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-kit/log/term"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

type config interface {
	GetString(key string) string
}

// Client is used to create the logger.
type Client struct {
	Config config

	// Writer is the destination when the output is 'stdout'. Defaults to os.Stdout.
	Writer io.Writer

	base base.Logger
}

// Init check the configuration and build the logger.
func (c *Client) Init() error {
	if c.Config == nil {
		return fmt.Errorf("missing config")
	}

	if c.Writer == nil {
		c.Writer = os.Stdout
	}

	logger, err := c.initOutput()
	if err != nil {
		return err
	}

	logger, err = c.initLevel(logger)
	if err != nil {
		return err
	}

	c.base = base.With(logger, "time", base.DefaultTimestampUTC)
	return nil
}

// Logger return the configured logger.
func (c *Client) Logger() base.Logger { return c.base }

func (c *Client) initOutput() (base.Logger, error) {
	output := c.Config.GetString("log.output")
	switch output {
	case "discard":
		return base.NewNopLogger(), nil
	case "stdout":
		format := c.Config.GetString("log.format")
		switch format {
		case "human":
			return term.NewLogger(base.NewSyncWriter(c.Writer), base.NewLogfmtLogger, color), nil
		case "json":
			return base.NewJSONLogger(base.NewSyncWriter(c.Writer)), nil
		default:
			return nil, fmt.Errorf("invalid log.format config '%s'", format)
		}
	default:
		return nil, fmt.Errorf("invalid log.output config '%s'", output)
	}
}

func (c *Client) initLevel(logger base.Logger) (base.Logger, error) {
	logLevel := c.Config.GetString("log.level")
	var filter level.Option

	switch logLevel {
	case levelDebug:
		filter = level.AllowDebug()
	case levelInfo:
		filter = level.AllowInfo()
	case levelWarn:
		filter = level.AllowWarn()
	case levelError:
		filter = level.AllowError()
	default:
		return nil, fmt.Errorf("invalid log.level config '%s'", logLevel)
	}

	return level.NewFilter(logger, filter), nil
}

func color(keyvals ...interface{}) term.FgBgColor {
	for i := 0; i < len(keyvals)-1; i += 2 {
		if keyvals[i] != level.Key() {
			continue
		}

		value, ok := keyvals[i+1].(level.Value)
		if !ok {
			return term.FgBgColor{}
		}

		switch value.String() {
		case levelDebug:
			return term.FgBgColor{Fg: term.DarkGray}
		case levelInfo:
			return term.FgBgColor{Fg: term.Gray}
		case levelWarn:
			return term.FgBgColor{Fg: term.Yellow}
		case levelError:
			return term.FgBgColor{Fg: term.Red}
		default:
			return term.FgBgColor{}
		}
	}

	return term.FgBgColor{}
}
