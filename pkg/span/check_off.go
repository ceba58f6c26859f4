//go:build !pestdebug

package span

// debugChecks disables precondition re-checks in the unchecked constructors;
// callers are trusted in regular builds.
const debugChecks = false
