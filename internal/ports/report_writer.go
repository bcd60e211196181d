package ports

import (
	"context"

	"github.com/bnema/insight-cli/internal/domain"
)

type ReportWriter interface {
	Write(ctx context.Context, path string, report domain.Report) error
}
