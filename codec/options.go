package codec

// DefaultFileRowEnd terminates every row written by WriteFile when no
// options are given.
const DefaultFileRowEnd = "\n"

// WriteOptions controls row encoding.
type WriteOptions struct {
	// RowEnd is appended after the last field of every row. Default "".
	RowEnd string
}

// ReadOptions controls batch decoding.
type ReadOptions struct {
	// SkipLengthMismatch skips lines whose length differs from the record
	// width instead of aborting the batch. Other decode errors are always
	// fatal.
	SkipLengthMismatch bool

	// OnSkip, if set, is called for every line skipped.
	// lineNo is 1-based.
	OnSkip func(lineNo int, line string, err error)
}

// DefaultReadOptions returns the options used when nil is passed. It is the
// zero value: the first mismatching line aborts the batch.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{}
}

func readOptionsOrDefault(opts *ReadOptions) ReadOptions {
	if opts == nil {
		return DefaultReadOptions()
	}

	return *opts
}

func rowEndOf(opts *WriteOptions) string {
	if opts == nil {
		return ""
	}

	return opts.RowEnd
}
