// Package mocks holds testify mocks of the repository, service and
// infrastructure interfaces for service and handler tests.
package mocks
