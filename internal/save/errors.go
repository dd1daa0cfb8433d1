package save

import "errors"

// Error taxonomy. All conditions are non-fatal; callers report them and
// continue running.
var (
	// ErrNotFound means no save exists for the slot.
	ErrNotFound = errors.New("save: no save found")

	// ErrCorruptData means the stored bytes are not a valid record, or the
	// record does not fit the live game (index or pose shape).
	ErrCorruptData = errors.New("save: corrupt save data")

	// ErrVersionMismatch is wrapped together with ErrCorruptData when the
	// record was written by a different format version.
	ErrVersionMismatch = errors.New("save: unsupported format version")

	// ErrIO means the record could not be written.
	ErrIO = errors.New("save: write failed")
)

// Describe returns the user-facing status message for a save/load error.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "No save found"
	case errors.Is(err, ErrVersionMismatch):
		return "Save is from an incompatible version"
	case errors.Is(err, ErrCorruptData):
		return "Save file is corrupt"
	case errors.Is(err, ErrIO):
		return "Could not write save"
	default:
		return "Save failed: " + err.Error()
	}
}
