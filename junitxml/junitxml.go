// Package junitxml reads the JUnit XML report written by the fluster conformance runner.
package junitxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ResultKind is the element name of an outcome marker inside a testcase.
type ResultKind string

// Outcome markers ...
const (
	KindFailure ResultKind = "failure"
	KindError   ResultKind = "error"
	KindSkipped ResultKind = "skipped"
)

// TestReport is the root of a parsed report. The file may carry a <testsuites> root or a single
// <testsuite> root; both become a report.
type TestReport struct {
	TestSuites []TestSuite
}

// TestSuite ...
type TestSuite struct {
	Name       string
	Properties []Property
	TestCases  []TestCase
}

// Property is one <property name="" value=""/> entry. Properties keep document order.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// TestCase is a single test vector.
type TestCase struct {
	Name      string
	ClassName string
	Time      float64
	// Results holds the outcome markers in document order. An empty slice means passed.
	Results []Result
}

// Result ...
type Result struct {
	Kind    ResultKind
	Message string
	Type    string
	Text    string
}

type xmlResult struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

type xmlTestSuite struct {
	Name       string     `xml:"name,attr"`
	Properties []Property `xml:"properties>property"`
	TestCases  []TestCase `xml:"testcase"`
}

// UnmarshalXML walks the testcase children one by one, so the order of outcome markers survives.
func (tc *TestCase) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "name":
			tc.Name = attr.Value
		case "classname":
			tc.ClassName = attr.Value
		case "time":
			if t, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				tc.Time = t
			}
		}
	}

	for {
		token, err := d.Token()
		if err != nil {
			return err
		}

		switch el := token.(type) {
		case xml.StartElement:
			kind := ResultKind(el.Name.Local)
			switch kind {
			case KindFailure, KindError, KindSkipped:
				var r xmlResult
				if err := d.DecodeElement(&r, &el); err != nil {
					return err
				}
				tc.Results = append(tc.Results, Result{
					Kind:    kind,
					Message: r.Message,
					Type:    r.Type,
					Text:    r.Text,
				})
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Passed ...
func (tc TestCase) Passed() bool {
	return len(tc.Results) == 0
}

// Parse decodes a report. Malformed input yields an error and no report.
func Parse(r io.Reader) (*TestReport, error) {
	d := xml.NewDecoder(r)

	root, err := rootElement(d)
	if err != nil {
		return nil, err
	}

	report := &TestReport{}
	switch root.Name.Local {
	case "testsuites":
		var suites struct {
			TestSuites []xmlTestSuite `xml:"testsuite"`
		}
		if err := d.DecodeElement(&suites, &root); err != nil {
			return nil, err
		}
		for _, s := range suites.TestSuites {
			report.TestSuites = append(report.TestSuites, TestSuite(s))
		}
	case "testsuite":
		var suite xmlTestSuite
		if err := d.DecodeElement(&suite, &root); err != nil {
			return nil, err
		}
		report.TestSuites = append(report.TestSuites, TestSuite(suite))
	default:
		return nil, fmt.Errorf("unexpected root element <%s>, expected <testsuites> or <testsuite>", root.Name.Local)
	}

	if err := ensureTrailingContentIsWellFormed(d); err != nil {
		return nil, err
	}

	return report, nil
}

func rootElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := d.Token()
		if errors.Is(err, io.EOF) {
			return xml.StartElement{}, errors.New("no root element found")
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func ensureTrailingContentIsWellFormed(d *xml.Decoder) error {
	for {
		token, err := d.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if start, ok := token.(xml.StartElement); ok {
			return fmt.Errorf("unexpected element <%s> after the root element", start.Name.Local)
		}
	}
}
