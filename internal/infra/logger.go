// README: zap logger construction shared by the API and CLI entry points.
package infra

import "go.uber.org/zap"

// NewLogger returns a JSON production logger, or a console logger with debug
// level when development is true.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
