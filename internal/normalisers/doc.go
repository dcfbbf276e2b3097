// Package normalisers holds the text processors that turn raw ficha input
// into clean content. Each subpackage implements driven.TextProcessor.
package normalisers
