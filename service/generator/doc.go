// Package generator builds RFC 4122 UUIDs of versions 1, 3, 4 and 5.
//
// Randomness and time are injected through options so that time-based and
// random identifiers can be reproduced in tests:
//
//	gen := generator.New(generator.WithRandom(r), generator.WithClock(now))
//	id, err := gen.Generate(ctx, &generator.Request{Version: generator.SHA1, Name: "example.com"})
package generator
