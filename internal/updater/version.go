package updater

import (
	"strconv"
	"strings"
)

// IsNewer reports whether the remote version string is newer than the local
// one. Both strings are split on "." and compared as integer tuples, with the
// shorter side zero-padded. If either side carries a non-integer component the
// comparison degrades to plain string inequality.
func IsNewer(remote, local string) bool {
	remoteParts, ok1 := parseVersion(remote)
	localParts, ok2 := parseVersion(local)
	if !ok1 || !ok2 {
		return remote != local
	}

	for len(remoteParts) < len(localParts) {
		remoteParts = append(remoteParts, 0)
	}
	for len(localParts) < len(remoteParts) {
		localParts = append(localParts, 0)
	}

	for i := range remoteParts {
		if remoteParts[i] != localParts[i] {
			return remoteParts[i] > localParts[i]
		}
	}
	return false
}

func parseVersion(v string) ([]int, bool) {
	parts := strings.Split(v, ".")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}
