package processor

import (
	"github.com/subwhisper/subwhisper/internal/config"
	"github.com/subwhisper/subwhisper/internal/logger"
	"github.com/subwhisper/subwhisper/pkg/executor"
)

type implProcessor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
