package generator

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"hash"

	"github.com/google/uuid"
)

// DNSNamespace is used whenever the supplied namespace is missing or malformed.
var DNSNamespace = uuid.NameSpaceDNS

// ParseNamespace parses text as a UUID, falling back to DNSNamespace.
func ParseNamespace(text string) uuid.UUID {
	ret, err := uuid.Parse(text)
	if err != nil {
		return DNSNamespace
	}
	return ret
}

// NameBased returns a version 3 (MD5) or 5 (SHA-1) UUID derived from the
// namespace bytes followed by the UTF-8 name.
func (s *Service) NameBased(version Version, name, namespace string) (uuid.UUID, error) {
	var h hash.Hash
	switch version {
	case MD5:
		h = md5.New()
	case SHA1:
		h = sha1.New()
	default:
		return uuid.Nil, fmt.Errorf("%w: %d is not name-based", ErrUnsupportedVersion, int(version))
	}
	return uuid.NewHash(h, ParseNamespace(namespace), []byte(name), int(version)), nil
}
