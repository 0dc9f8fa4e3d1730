package gtfs

import "fmt"

// FetchError reports a failed bundle download: either a transport error or a
// non-2xx HTTP status.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ArchiveError reports a bundle that could not be read as a zip archive.
type ArchiveError struct {
	Err error
}

func (e *ArchiveError) Error() string { return fmt.Sprintf("unreadable GTFS archive: %v", e.Err) }

func (e *ArchiveError) Unwrap() error { return e.Err }

// MissingTableError reports a mandatory table absent from the bundle.
// routes.txt, trips.txt and stops.txt are mandatory; stop_times.txt is not.
type MissingTableError struct {
	Table string
}

func (e *MissingTableError) Error() string { return fmt.Sprintf("GTFS bundle is missing %s", e.Table) }
