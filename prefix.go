package c32

import "errors"

func mustBeASCIIPrefix(prefix byte) {
	if prefix >= 0x80 {
		panic("c32: prefix must be an ASCII character")
	}
}

// matchPrefix returns a MissingPrefixError unless src starts with prefix.
func matchPrefix(src []byte, prefix byte) error {
	mustBeASCIIPrefix(prefix)

	if len(src) == 0 {
		return MissingPrefixError{Expected: prefix, Empty: true}
	}

	if src[0] != prefix {
		return MissingPrefixError{Expected: prefix, Got: src[0]}
	}

	return nil
}

// mustFit unwraps the result of an operation writing into a buffer this
// package sized. A capacity failure there is a bug in the length functions.
func mustFit(n int, err error) int {
	if err != nil {
		panic("c32: buffer sized by length function rejected: " + err.Error())
	}

	return n
}

// mustFitErr passes err through unless it reports a capacity failure on a
// buffer this package sized.
func mustFitErr(err error) error {
	if errors.Is(err, ErrBufferTooSmall) {
		panic("c32: buffer sized by length function rejected: " + err.Error())
	}

	return err
}
