// Package errors provides coded, structured errors for glint's CLI and
// configuration surfaces. Each released code is registered once and
// carries a stable message, optional detail, and a documentation link.
package errors
