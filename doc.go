// Package tevclient remotely controls the tev image viewer over its TCP
// control protocol.
//
// Ownership boundary:
// - connection lifecycle (resolve, connect, send, disconnect)
// - viewer command packets (open/reload/close/create/update, vector graphics)
// - last-error retention
//
// The protocol is fire-and-forget: the client writes length-prefixed frames
// and never reads a response. All calls block the caller and the client is
// not safe for concurrent use.
package tevclient
