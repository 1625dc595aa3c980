package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification also known as "contract".
//
// Any behavioural expectation a consumer has towards a supplied dependency
// should be defined in a contract, so different supplier implementations
// can be verified against the same expectations.
type Contract interface {
	testcase.Suite
	// Test is the function that asserts expected behavioural requirements from a supplier implementation.
	Test(*testing.T)
	// Benchmark will help with what to measure.
	Benchmark(*testing.B)
}
