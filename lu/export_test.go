// SPDX-License-Identifier: MIT

package lu

// Test-Bridge (White-Box) for the private pivot scan.
//
// Purpose:
//   - Expose the unexported bestPivot to lu_test ONLY, so the selection rule
//     can be verified directly without widening the production API.
//   - Compiles only into the test binary (file is *_test.go).

// BestPivotForTest runs the relative-metric pivot scan for pivot column p.
func (s *Store) BestPivotForTest(p int) (int, error) { return s.bestPivot(p) }

// StateForTest reports whether the store still accepts mutation.
func (s *Store) StateForTest() (ready, decomposed bool) {
	return s.state == stateReady, s.state == stateDecomposed
}
