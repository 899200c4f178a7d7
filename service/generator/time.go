package generator

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/uuidclip/internal/entropy"
)

// gregorianOffset is the number of 100ns intervals between 1582-10-15 and the Unix epoch.
const gregorianOffset = 0x01B21DD213814000

// TimeBased returns a version 1 UUID. Clock sequence and node are drawn from
// the random provider on every call; the node has its multicast bit set so it
// never collides with a real MAC address.
func (s *Service) TimeBased() (uuid.UUID, error) {
	timestamp := uint64(s.now().UnixMilli())*10000 + gregorianOffset

	seqBytes, err := entropy.Read(s.random, 2)
	if err != nil {
		return uuid.Nil, fmt.Errorf("clock sequence: %w", err)
	}
	sequence := binary.BigEndian.Uint16(seqBytes) & 0x3FFF

	node, err := entropy.Read(s.random, 6)
	if err != nil {
		return uuid.Nil, fmt.Errorf("node: %w", err)
	}
	node[0] |= 0x01

	var ret uuid.UUID
	binary.BigEndian.PutUint32(ret[0:4], uint32(timestamp))
	binary.BigEndian.PutUint16(ret[4:6], uint16(timestamp>>32))
	binary.BigEndian.PutUint16(ret[6:8], uint16(timestamp>>48)&0x0FFF|0x1000)
	ret[8] = byte(sequence>>8)&0x3F | 0x80
	ret[9] = byte(sequence)
	copy(ret[10:], node)
	return ret, nil
}
