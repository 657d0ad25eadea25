package manifest

import "fmt"

// Size is a byte count with binary (base 1024) KB/MB views for display.
type Size struct {
	Bytes int64
}

// KB returns the size in kibibytes.
func (s Size) KB() float64 {
	return float64(s.Bytes) / 1024
}

// MB returns the size in mebibytes.
func (s Size) MB() float64 {
	return s.KB() / 1024
}

// String formats the size as "<n> bytes (<kb> KB, <mb> MB)" with two
// decimal places on the derived values.
func (s Size) String() string {
	return fmt.Sprintf("%d bytes (%.2f KB, %.2f MB)", s.Bytes, s.KB(), s.MB())
}
