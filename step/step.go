package step

import (
	"errors"
	"fmt"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/kernelci/kernelci-rootfs/fluster"
	"github.com/kernelci/kernelci-rootfs/junitxml"
	"github.com/kernelci/kernelci-rootfs/lava"
	"github.com/kernelci/kernelci-rootfs/translator"
)

// ValidationCaseName is the case reporting whether the fluster report could be loaded.
const ValidationCaseName = "validate-fluster-results"

// ReportUnavailableError is returned when the report is missing, unreadable or malformed.
type ReportUnavailableError struct {
	Path string
	Err  error
}

func (e *ReportUnavailableError) Error() string {
	return fmt.Sprintf("fluster report unavailable (%s): %v", e.Path, e.Err)
}

// Unwrap ...
func (e *ReportUnavailableError) Unwrap() error {
	return e.Err
}

// IsReportUnavailableError ...
func IsReportUnavailableError(err error) bool {
	var target *ReportUnavailableError
	return err != nil && errors.As(err, &target)
}

// FlusterParser runs fluster and reports its results to LAVA.
type FlusterParser struct {
	logger       log.Logger
	sinkResolver lava.Resolver
	runner       fluster.Runner
	reportReader junitxml.Reader
}

// NewFlusterParser ...
func NewFlusterParser(logger log.Logger, sinkResolver lava.Resolver, runner fluster.Runner, reportReader junitxml.Reader) FlusterParser {
	return FlusterParser{
		logger:       logger,
		sinkResolver: sinkResolver,
		runner:       runner,
		reportReader: reportReader,
	}
}

// Run ...
func (p FlusterParser) Run(cfg Config) error {
	sink := p.sinkResolver.Resolve(cfg.Search)

	if !cfg.ResultsOnly {
		if err := p.runner.Run(cfg.Fluster); err != nil {
			return err
		}
	}

	if cfg.RunOnly {
		return nil
	}

	p.logger.Println()
	p.logger.Infof("Parsing fluster results (%s)", cfg.ResultsPath)

	report, err := p.reportReader.Read(cfg.ResultsPath)
	if err != nil {
		if sinkErr := sink.RecordCase(ValidationCaseName, lava.ResultFail); sinkErr != nil {
			p.logger.Warnf("Failed to report %s: %s", ValidationCaseName, sinkErr)
		}
		return &ReportUnavailableError{Path: cfg.ResultsPath, Err: err}
	}

	if err := sink.RecordCase(ValidationCaseName, lava.ResultPass); err != nil {
		return fmt.Errorf("failed to report %s: %w", ValidationCaseName, err)
	}

	if err := translator.NewTranslator(p.logger, sink).Translate(*report); err != nil {
		return err
	}

	p.logger.Donef("Reported %d test set(s)", len(report.TestSuites))
	return nil
}
