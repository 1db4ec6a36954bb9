// Package render serializes markup trees to HTML and provides the
// default markdown-to-markup converter used by the view layer's markup
// delegation.
package render
