// Package uuidclip generates RFC 4122 UUIDs and places them on the system
// clipboard.
//
// The root package exposes a small Service façade that wires the generator
// and the clipboard writer together:
//
//	srv := uuidclip.New()
//	id, _ := srv.Generate(ctx, &generator.Request{Version: generator.SHA1, Name: "example.com"})
//	_ = srv.Copy(ctx, id)
//
// Defaults may be supplied through a YAML Config (see LoadConfig); the
// uuidclip command in cmd/uuidclip is the intended front end.
package uuidclip
