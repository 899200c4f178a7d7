package generator

import "strconv"

// Version identifies the UUID layout being generated.
type Version int

const (
	TimeBased Version = 1
	MD5       Version = 3
	Random    Version = 4
	SHA1      Version = 5
)

// DefaultVersion is used when no version was requested.
const DefaultVersion = Random

// Supported reports whether v can be generated.
func (v Version) Supported() bool {
	switch v {
	case TimeBased, MD5, Random, SHA1:
		return true
	}
	return false
}

// NameBased reports whether v derives the UUID from a namespace and a name.
func (v Version) NameBased() bool {
	return v == MD5 || v == SHA1
}

func (v Version) String() string {
	switch v {
	case TimeBased:
		return "v1 (time-based)"
	case MD5:
		return "v3 (MD5 name-based)"
	case Random:
		return "v4 (random)"
	case SHA1:
		return "v5 (SHA-1 name-based)"
	}
	return "v" + strconv.Itoa(int(v))
}
