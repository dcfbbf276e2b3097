// Package connectors holds the input sources that feed raw ficha text into
// the processor. Each subpackage implements driven.InputSource for one
// kind of location.
package connectors
