package translator

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/google/go-cmp/cmp"
	"github.com/kernelci/kernelci-rootfs/junitxml"
	"github.com/kernelci/kernelci-rootfs/lava"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink keeps every event as a printable line.
type recordingSink struct {
	events  []string
	failOn  string
	failErr error
}

func (s *recordingSink) record(event string) error {
	if s.failOn != "" && event == s.failOn {
		return s.failErr
	}
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) StartSet(name string) error {
	return s.record("start " + name)
}

func (s *recordingSink) StopSet() error {
	return s.record("stop")
}

func (s *recordingSink) RecordCase(name string, result lava.Result) error {
	return s.record(fmt.Sprintf("case %s %s", name, result))
}

func vector(name string, kinds ...junitxml.ResultKind) junitxml.TestCase {
	tc := junitxml.TestCase{Name: name}
	for _, kind := range kinds {
		tc.Results = append(tc.Results, junitxml.Result{Kind: kind})
	}
	return tc
}

func suite(name, decoder string, vectors ...junitxml.TestCase) junitxml.TestSuite {
	s := junitxml.TestSuite{Name: name, TestCases: vectors}
	if decoder != "" {
		s.Properties = []junitxml.Property{{Name: "decoder", Value: decoder}}
	}
	return s
}

func Test_GivenVectors_WhenClassified_ThenFirstMarkerDecides(t *testing.T) {
	tests := []struct {
		name     string
		vector   junitxml.TestCase
		expected lava.Result
	}{
		{name: "no marker", vector: vector("a"), expected: lava.ResultPass},
		{name: "skipped", vector: vector("a", junitxml.KindSkipped), expected: lava.ResultSkip},
		{name: "failure", vector: vector("a", junitxml.KindFailure), expected: lava.ResultFail},
		{name: "error", vector: vector("a", junitxml.KindError), expected: lava.ResultFail},
		{name: "skipped then failure", vector: vector("a", junitxml.KindSkipped, junitxml.KindFailure), expected: lava.ResultSkip},
		{name: "failure then skipped", vector: vector("a", junitxml.KindFailure, junitxml.KindSkipped), expected: lava.ResultFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, result := ClassifyVector(tt.vector)

			assert.Equal(t, "a", name)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func Test_GivenSuiteWithProperties_WhenDerivingDecoder_ThenUsesFirstPropertyValue(t *testing.T) {
	s := junitxml.TestSuite{
		Name: "JVT-AVC_V1",
		Properties: []junitxml.Property{
			{Name: "decoder", Value: "FFmpeg-H.264"},
			{Name: "other", Value: "ignored"},
		},
	}

	decoder, err := DecoderName(s)

	require.NoError(t, err)
	assert.Equal(t, "FFmpeg-H.264", decoder)
}

func Test_GivenSuiteWithoutProperties_WhenDerivingDecoder_ThenFails(t *testing.T) {
	_, err := DecoderName(junitxml.TestSuite{Name: "JVT-AVC_V1"})

	require.Error(t, err)
	assert.True(t, IsMissingDecoderMetadataError(err))
}

func Test_GivenNames_WhenSanitized_ThenDotsBecomeDashesIdempotently(t *testing.T) {
	for _, name := range []string{"", "plain", "a.1", "H.264.V4L2", "...", "a-1"} {
		once := SanitizeName(name)

		assert.NotContains(t, once, ".")
		assert.Equal(t, once, SanitizeName(once))
	}
	assert.Equal(t, "GStreamer-H-264-V4L2SL-Gst1-0", SanitizeName("GStreamer-H.264-V4L2SL-Gst1.0"))
}

func Test_GivenSuiteAndDecoder_WhenNamingSet_ThenJoinsAndSanitizes(t *testing.T) {
	assert.Equal(t, "h264-ffmpeg-h264", SetName("h264", "ffmpeg-h264"))
	assert.Equal(t, "JVT-AVC_V1-FFmpeg-H-264", SetName("JVT-AVC_V1", "FFmpeg-H.264"))
}

func Test_GivenMixedVectors_WhenEmitted_ThenOrderAndResultsArePreserved(t *testing.T) {
	// Given
	sink := &recordingSink{}
	translator := NewTranslator(log.NewLogger(), sink)
	report := junitxml.TestReport{TestSuites: []junitxml.TestSuite{
		suite("h264", "ffmpeg-h264",
			vector("a.1"),
			vector("b.2", junitxml.KindSkipped),
			vector("c.3", junitxml.KindFailure),
		),
	}}

	// When
	err := translator.Translate(report)

	// Then
	require.NoError(t, err)
	expected := []string{
		"start h264-ffmpeg-h264",
		"case a-1 pass",
		"case b-2 skip",
		"case c-3 fail",
		"stop",
	}
	if diff := cmp.Diff(expected, sink.events); diff != "" {
		t.Errorf("emitted events mismatch (-want +got):\n%s", diff)
	}
}

func Test_GivenSeveralSuites_WhenEmitted_ThenSetsFollowReportOrder(t *testing.T) {
	// Given
	sink := &recordingSink{}
	translator := NewTranslator(log.NewLogger(), sink)
	report := junitxml.TestReport{TestSuites: []junitxml.TestSuite{
		suite("VP9-TEST-VECTORS", "libvpx-VP9", vector("vp90-2-00-quantizer-00.webm")),
		suite("JVT-AVC_V1", "FFmpeg-H.264"),
		suite("VP9-TEST-VECTORS", "libvpx-VP9", vector("vp90-2-00-quantizer-00.webm")),
	}}

	// When
	err := translator.Translate(report)

	// Then
	require.NoError(t, err)
	expected := []string{
		"start VP9-TEST-VECTORS-libvpx-VP9",
		"case vp90-2-00-quantizer-00-webm pass",
		"stop",
		"start JVT-AVC_V1-FFmpeg-H-264",
		"stop",
		"start VP9-TEST-VECTORS-libvpx-VP9",
		"case vp90-2-00-quantizer-00-webm pass",
		"stop",
	}
	if diff := cmp.Diff(expected, sink.events); diff != "" {
		t.Errorf("emitted events mismatch (-want +got):\n%s", diff)
	}
}

func Test_GivenSuiteWithoutDecoder_WhenTranslated_ThenAbortsAfterEarlierSets(t *testing.T) {
	// Given
	sink := &recordingSink{}
	translator := NewTranslator(log.NewLogger(), sink)
	report := junitxml.TestReport{TestSuites: []junitxml.TestSuite{
		suite("first", "dec", vector("v")),
		suite("second", ""),
		suite("third", "dec", vector("v")),
	}}

	// When
	err := translator.Translate(report)

	// Then
	require.Error(t, err)
	assert.True(t, IsMissingDecoderMetadataError(err))
	assert.Equal(t, []string{"start first-dec", "case v pass", "stop"}, sink.events)
}

func Test_GivenFailingSink_WhenEmitting_ThenStopsAtTheFailure(t *testing.T) {
	// Given
	sink := &recordingSink{failOn: "case b fail", failErr: errors.New("lava-test-case failed")}
	translator := NewTranslator(log.NewLogger(), sink)

	// When
	err := translator.EmitSet(suite("s", "d", vector("a"), vector("b", junitxml.KindError), vector("c")))

	// Then
	require.Error(t, err)
	assert.Equal(t, []string{"start s-d", "case a pass"}, sink.events)
}

func Test_GivenReport_WhenNormalized_ThenMatchesEmittedSets(t *testing.T) {
	report := junitxml.TestReport{TestSuites: []junitxml.TestSuite{
		suite("h264", "ffmpeg-h264", vector("a.1"), vector("b.2", junitxml.KindSkipped)),
	}}

	sets, err := Normalize(report)

	require.NoError(t, err)
	expected := []Set{{
		Name: "h264-ffmpeg-h264",
		Cases: []Case{
			{Name: "a-1", Result: lava.ResultPass},
			{Name: "b-2", Result: lava.ResultSkip},
		},
	}}
	if diff := cmp.Diff(expected, sets); diff != "" {
		t.Errorf("normalized sets mismatch (-want +got):\n%s", diff)
	}
}
