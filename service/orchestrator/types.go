package orchestrator

import (
	"context"
	"io"

	"github.com/nokutoka/nokubuild/model"
	"github.com/nokutoka/nokubuild/service/build"
	"github.com/nokutoka/nokubuild/service/config"
	"github.com/nokutoka/nokubuild/service/output"
	"github.com/nokutoka/nokubuild/service/storage"
)

type service struct {
	cfg            *config.Config
	buildService   build.Service
	outputService  output.Service
	storageService storage.Service
	versionInfo    model.VersionInfo
	// buildOutput receives the build tool's console output.
	buildOutput io.Writer
}

// Service is the interface for orchestrator service.
type Service interface {
	Orchestrate(ctx context.Context, flags model.Flags) (model.ReleaseSummary, error)
}
