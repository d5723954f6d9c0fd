package zeck

// Fibbinary conversion (OEIS A003714): bit i of the string, counted from the
// least-significant end, stands for F(i+2). Canonical index sets therefore
// map to binary strings with no "11" substring.

// BitString renders a canonical index set as its fibbinary string, most
// significant bit first. The empty set renders as "0".
func BitString(set IndexSet) (string, error) {
	if err := set.Validate(); err != nil {
		return "", err
	}
	if len(set) == 0 {
		return "0", nil
	}

	// Highest index is last: canonical sets are ascending.
	width := set[len(set)-1] - 1 // positions 0..maxIdx-2
	buf := make([]byte, width)
	for i := range buf {
		buf[i] = '0'
	}
	for _, idx := range set {
		// Position idx-2 from the right.
		buf[width-1-(idx-2)] = '1'
	}

	return string(buf), nil
}

// ParseBitString inverts BitString. The input must be a non-empty string of
// '0' and '1'; the decoded set is additionally required to be canonical, so
// strings containing "11" are rejected with ErrNotCanonical.
func ParseBitString(s string) (IndexSet, error) {
	if len(s) == 0 {
		return nil, ErrBadBitString
	}

	var set IndexSet
	width := len(s)
	for i := 0; i < width; i++ {
		switch s[i] {
		case '0':
		case '1':
			set = append(set, (width-1-i)+2)
		default:
			return nil, ErrBadBitString
		}
	}

	// Bits were collected most-significant first; restore ascending order.
	for l, r := 0, len(set)-1; l < r; l, r = l+1, r-1 {
		set[l], set[r] = set[r], set[l]
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if set == nil {
		set = IndexSet{}
	}

	return set, nil
}
