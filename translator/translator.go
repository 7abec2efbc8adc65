// Package translator turns a fluster JUnit report into LAVA test sets and cases.
//
// Every suite becomes one set named "<suite>-<decoder>", every test vector one case. Dots are
// replaced by dashes in both, because KCIDB uses dots as its test hierarchy separator.
package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/kernelci/kernelci-rootfs/junitxml"
	"github.com/kernelci/kernelci-rootfs/lava"
)

// MissingDecoderMetadataError is returned for a suite without any property, so the decoder
// under test can't be named.
type MissingDecoderMetadataError struct {
	Suite string
}

func (e *MissingDecoderMetadataError) Error() string {
	return fmt.Sprintf("test suite %q declares no properties, decoder name is missing", e.Suite)
}

// IsMissingDecoderMetadataError ...
func IsMissingDecoderMetadataError(err error) bool {
	var target *MissingDecoderMetadataError
	return err != nil && errors.As(err, &target)
}

// Case ...
type Case struct {
	Name   string
	Result lava.Result
}

// Set ...
type Set struct {
	Name  string
	Cases []Case
}

// ClassifyVector maps a test vector to its case name and result. Only the first outcome
// marker is looked at: skipped means skip, anything else means fail.
func ClassifyVector(tc junitxml.TestCase) (string, lava.Result) {
	if tc.Passed() {
		return tc.Name, lava.ResultPass
	}
	if tc.Results[0].Kind == junitxml.KindSkipped {
		return tc.Name, lava.ResultSkip
	}
	return tc.Name, lava.ResultFail
}

// DecoderName is the value of the suite's first property.
func DecoderName(suite junitxml.TestSuite) (string, error) {
	if len(suite.Properties) == 0 {
		return "", &MissingDecoderMetadataError{Suite: suite.Name}
	}
	return suite.Properties[0].Value, nil
}

// SanitizeName ...
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, ".", "-")
}

// SetName ...
func SetName(suiteName, decoder string) string {
	return SanitizeName(fmt.Sprintf("%s-%s", suiteName, decoder))
}

// NormalizeSuite ...
func NormalizeSuite(suite junitxml.TestSuite) (Set, error) {
	decoder, err := DecoderName(suite)
	if err != nil {
		return Set{}, err
	}

	set := Set{Name: SetName(suite.Name, decoder)}
	for _, tc := range suite.TestCases {
		name, result := ClassifyVector(tc)
		set.Cases = append(set.Cases, Case{Name: SanitizeName(name), Result: result})
	}
	return set, nil
}

// Normalize ...
func Normalize(report junitxml.TestReport) ([]Set, error) {
	var sets []Set
	for _, suite := range report.TestSuites {
		set, err := NormalizeSuite(suite)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// Translator emits normalized sets to a sink.
type Translator struct {
	logger log.Logger
	sink   lava.Sink
}

// NewTranslator ...
func NewTranslator(logger log.Logger, sink lava.Sink) Translator {
	return Translator{
		logger: logger,
		sink:   sink,
	}
}

// Translate emits the suites in report order. The first error stops the translation; sets
// emitted before it stay emitted.
func (t Translator) Translate(report junitxml.TestReport) error {
	for _, suite := range report.TestSuites {
		if err := t.EmitSet(suite); err != nil {
			return err
		}
	}
	return nil
}

// EmitSet ...
func (t Translator) EmitSet(suite junitxml.TestSuite) error {
	set, err := NormalizeSuite(suite)
	if err != nil {
		return err
	}

	if err := t.sink.StartSet(set.Name); err != nil {
		return fmt.Errorf("failed to start test set %s: %w", set.Name, err)
	}

	summary := map[lava.Result]int{}
	for _, c := range set.Cases {
		if err := t.sink.RecordCase(c.Name, c.Result); err != nil {
			return fmt.Errorf("failed to record test case %s: %w", c.Name, err)
		}
		summary[c.Result]++
	}

	if err := t.sink.StopSet(); err != nil {
		return fmt.Errorf("failed to stop test set %s: %w", set.Name, err)
	}

	t.logger.Debugf("%s: %d pass, %d fail, %d skip", set.Name, summary[lava.ResultPass], summary[lava.ResultFail], summary[lava.ResultSkip])
	return nil
}
