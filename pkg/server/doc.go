// Package server hosts the view layer over HTTP and WebSocket. A plain
// GET renders the root component once; a WebSocket session keeps a
// mounted tree alive and pushes re-rendered HTML whenever the index
// changes. The session event loop is the production Dispatcher: every
// state application is serialized onto it.
package server
