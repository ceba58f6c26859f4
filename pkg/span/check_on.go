//go:build pestdebug

package span

// debugChecks enables precondition re-checks in the unchecked constructors
// (pestdebug build tag set).
const debugChecks = true
