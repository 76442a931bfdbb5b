package user

import (
	"sort"
	"strconv"

	apperrors "qatest-api/pkg/errors"
)

// ListParams holds parsed pagination parameters for list requests.
// HasCount distinguishes an absent count (return everything from Offset)
// from an explicit one.
type ListParams struct {
	Offset   int64
	Count    int64
	HasCount bool
}

// ParseListParams parses raw query-string values into ListParams. The
// hasOffset/hasCount flags report whether each parameter was present in the
// query at all; an absent offset defaults to 0. Any present value that does
// not parse as an integer — including a present-but-empty one — is a
// validation error, never a silent empty result.
func ParseListParams(offset, count string, hasOffset, hasCount bool) (ListParams, error) {
	p := ListParams{HasCount: hasCount}

	if hasOffset {
		n, err := strconv.ParseInt(offset, 10, 64)
		if err != nil {
			return ListParams{}, apperrors.NewValidationError("offset", "Invalid offset or count parameter")
		}
		p.Offset = n
	}

	if hasCount {
		n, err := strconv.ParseInt(count, 10, 64)
		if err != nil {
			return ListParams{}, apperrors.NewValidationError("count", "Invalid offset or count parameter")
		}
		p.Count = n
	}

	return p, nil
}

// Paginate returns the sub-sequence of users selected by p. The input is
// sorted by id ascending (numeric compare on the canonical int64 id) before
// slicing; the input slice itself is left untouched.
//
// Policy:
//   - offset < 0 or offset >= len: empty result, never an error
//   - count absent: everything from offset to the end
//   - count < 0: empty result
//   - count == 0: exactly one element, as if count were 1 (a preserved quirk
//     of the reference API, relied on by its test suites)
//   - otherwise the window [offset, offset+count), clipped to the available
//     length
func Paginate(users []User, p ListParams) []User {
	sorted := make([]User, len(users))
	copy(sorted, users)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	if p.Offset < 0 || p.Offset >= int64(len(sorted)) {
		return []User{}
	}

	if !p.HasCount {
		return sorted[p.Offset:]
	}

	count := p.Count
	if count < 0 {
		return []User{}
	}
	if count == 0 {
		count = 1
	}

	// Clip by comparing against the remaining length rather than computing
	// offset+count, which would overflow for counts near MaxInt64.
	end := int64(len(sorted))
	if count < end-p.Offset {
		end = p.Offset + count
	}
	return sorted[p.Offset:end]
}
