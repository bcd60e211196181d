// Package toml writes interpreted visualizations to a TOML report file, the
// export deliverable. Writes are atomic: encode to a temp file in the target
// directory, then rename over the destination.
package toml

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/insight-cli/internal/domain"
	"github.com/bnema/insight-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	reportFileMode  = 0o600
	reportDirMode   = 0o700
	tempFilePattern = ".report-*.toml.tmp"
)

type Writer struct{}

var _ ports.ReportWriter = Writer{}

func (Writer) Write(ctx context.Context, path string, report domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return fmt.Errorf("report path is empty")
	}

	data, err := toml.Marshal(toSchema(report))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, reportDirMode); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp report file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp report file: %w", err)
	}

	if err := tempFile.Chmod(reportFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp report file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp report file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace report file: %w", err)
	}

	cleanup = false

	return nil
}
