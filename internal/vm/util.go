package vm

import "strconv"

// parseUint16 parses s as an unsigned base-10 integer in range [0, 65535].
func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}

	return uint16(v), nil
}
