// Package logging constructs the application's zap logger.
package logging

import (
	"go.uber.org/zap"
)

// New builds a zap logger appropriate for the environment: human-readable
// console output in development, JSON in production.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
