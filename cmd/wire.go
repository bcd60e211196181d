package cmd

import (
	"net/http"
	"os"
	"time"

	tomlexport "github.com/bnema/insight-cli/internal/adapters/export/toml"
	"github.com/bnema/insight-cli/internal/adapters/openai"
	"github.com/bnema/insight-cli/internal/adapters/render/chart"
	"github.com/bnema/insight-cli/internal/application"
	"github.com/bnema/insight-cli/internal/config"
	"github.com/bnema/insight-cli/internal/domain"
	"github.com/bnema/insight-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	session      *application.Session
	interpreter  *application.Interpreter
	renderChart  func(domain.Visualization, chart.RenderOptions) (string, error)
	reportWriter ports.ReportWriter
	now          func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, err
	}

	logger, err := newLogger()
	if err != nil {
		return nil, err
	}

	gateway := openai.Adapter{
		BaseURL:     cfg.BaseURL,
		APIKey:      cfg.APIKey,
		AssistantID: cfg.AssistantID,
		HTTPClient:  http.DefaultClient,
	}

	return &app{
		session:      application.NewSession(gateway, ports.SystemClock{}, logger),
		interpreter:  application.NewInterpreter(nil),
		renderChart:  chart.Render,
		reportWriter: tomlexport.Writer{},
		now:          time.Now,
	}, nil
}

// newLogger builds the diagnostics logger. Raw failure detail only ever goes
// here; users see the normalized messages. Silent unless INSIGHT_DEBUG is set.
func newLogger() (*zap.Logger, error) {
	if os.Getenv("INSIGHT_DEBUG") == "" {
		return zap.NewNop(), nil
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	logConfig.OutputPaths = []string{"stderr"}

	return logConfig.Build()
}
