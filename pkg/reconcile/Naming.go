package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

func NameMember(prefix string, index int) string {
	return fmt.Sprintf("%s-%d", prefix, index)
}

// ParseIndex extracts the trailing numeric index from a member name.
// A name without a numeric suffix is not fleet-managed and is skipped,
// never treated as an error.
func ParseIndex(name string) (int, bool) {
	parts := strings.Split(name, "-")

	if len(parts) < 2 {
		return 0, false
	}

	index, err := strconv.Atoi(parts[len(parts)-1])

	if err != nil {
		return 0, false
	}

	return index, true
}
