// Package entropy wraps the random-byte source so that it can be stubbed in
// tests. It lives under `internal` because callers should only depend on the
// io.Reader it hands out.
package entropy
