// Package mocks provides centralized mock implementations for testing.
//
// The mocks use function fields for customizable behavior, fall back to
// fixed return values, and track calls for verification:
//
//	import "github.com/phrazzld/studyaid/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    gw := &mocks.MockGateway{
//	        AnalyzeBlurtFn: func(ctx context.Context, p domain.Project, answer string) (*domain.BlurtAnalysis, error) {
//	            return &domain.BlurtAnalysis{Accuracy: 85}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	    assert.Equal(t, 1, gw.CallCount(generation.ModeBlurt))
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
