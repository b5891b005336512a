// Package testutils provides utilities for testing PikaScript code in Go.
package testutils

import (
	"sync"
	"testing"

	"github.com/pika-lang/pikascript"
)

// testRoot is the Root used for all tests that don't need isolation from
// each other.
var testRoot *pika.Root

var testRootInit sync.Once

// TestingRoot returns a Root for testing PikaScript. The Root is shared by
// all tests that use this package.
func TestingRoot() *pika.Root {
	testRootInit.Do(ResetTestingRoot)
	return testRoot
}

// ResetTestingRoot reinitializes the Root returned by TestingRoot. It is
// not safe to call this in parallel tests.
func ResetTestingRoot() {
	testRoot = pika.NewStandardRoot(nil)
}

// A ScriptTestCase is a test case containing PikaScript source and a
// predicate to check the result.
type ScriptTestCase struct {
	// Source is the PikaScript source to evaluate.
	Source string
	// Pass is a predicate taking the result of evaluating Source. If Pass
	// returns false, the test fails.
	Pass func(result pika.Value, err error) bool
}

// TestFunc returns a test function for the test case, evaluating Source in
// TestingRoot's shared Root.
func (c ScriptTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		v, err := TestingRoot().Evaluate(c.Source)
		if !c.Pass(v, err) {
			t.Errorf("%q produced wrong result: value=%q err=%v", c.Source, v, err)
		}
	}
}

// PassValue returns a Pass function that requires a successful evaluation
// equal (via pika.Equal) to want.
func PassValue(want pika.Value) func(pika.Value, error) bool {
	return func(result pika.Value, err error) bool {
		return err == nil && pika.Equal(want, result)
	}
}

// PassIdentical returns a Pass function that requires a successful
// evaluation whose text is exactly want, regardless of numeric equality.
func PassIdentical(want pika.Value) func(pika.Value, error) bool {
	return func(result pika.Value, err error) bool {
		return err == nil && pika.Identical(want, result)
	}
}

// PassVoid returns a Pass function that requires a successful evaluation
// yielding the void value.
func PassVoid() func(pika.Value, error) bool {
	return func(result pika.Value, err error) bool {
		return err == nil && result.IsVoid()
	}
}

// PassErrorKind returns a Pass function that requires evaluation to fail
// with a *pika.Error of the given kind.
func PassErrorKind(kind pika.ErrorKind) func(pika.Value, error) bool {
	return func(result pika.Value, err error) bool {
		e, ok := err.(*pika.Error)
		return ok && e.Kind == kind
	}
}
