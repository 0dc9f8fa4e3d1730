package gtfs

import (
	"archive/zip"
	"bytes"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
)

const (
	defaultRouteColor     = "000000"
	defaultRouteTextColor = "FFFFFF"
)

// LoadFromURL downloads a GTFS static bundle and populates the catalog.
// A transport error or non-2xx status yields a FetchError; everything after
// the download behaves like LoadFromBytes.
func (c *Catalog) LoadFromURL(bundleURL string) error {
	resp, err := http.Get(bundleURL)
	if err != nil {
		return &FetchError{URL: bundleURL, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: bundleURL, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{URL: bundleURL, Err: err}
	}
	return c.LoadFromBytes(body)
}

// LoadFromFile loads a GTFS static bundle from a local zip file.
func (c *Catalog) LoadFromFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &FetchError{URL: path, Err: err}
	}
	return c.LoadFromBytes(b)
}

// LoadFromBytes parses a zip-archived GTFS bundle. routes.txt, trips.txt and
// stops.txt are mandatory; stop_times.txt is optional and its absence leaves
// the stop-time index empty (scheduled departures become empty, not errors).
func (c *Catalog) LoadFromBytes(b []byte) error {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return &ArchiveError{Err: err}
	}
	tables := map[string]*zip.File{}
	for _, f := range zr.File {
		tables[strings.ToLower(f.Name)] = f
	}
	for _, name := range []string{"routes.txt", "trips.txt", "stops.txt"} {
		if tables[name] == nil {
			return &MissingTableError{Table: name}
		}
	}

	lines, err := readTable(tables["routes.txt"])
	if err != nil {
		return err
	}
	c.loadRoutes(lines)

	lines, err = readTable(tables["trips.txt"])
	if err != nil {
		return err
	}
	c.loadTrips(lines)

	lines, err = readTable(tables["stops.txt"])
	if err != nil {
		return err
	}
	c.loadStops(lines)

	if f := tables["stop_times.txt"]; f != nil {
		lines, err = readTable(f)
		if err != nil {
			return err
		}
		c.loadStopTimes(lines)
	} else {
		log.Printf("stop_times.txt not present in bundle, continuing with empty stop-time index")
	}

	c.Finalize()
	return nil
}

func readTable(f *zip.File) ([]string, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, &ArchiveError{Err: err}
	}
	defer func() { _ = rc.Close() }()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, &ArchiveError{Err: err}
	}
	text := strings.TrimPrefix(string(b), "\uFEFF")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n"), nil
}

// splitRow is a delimiter-unaware field split. Surrounding quote characters
// are stripped, but embedded commas inside quoted fields are NOT supported:
// such rows split at the wrong places and are usually dropped by the
// per-table minimum-field checks. Known limitation, kept on purpose.
func splitRow(line string) []string {
	fields := strings.Split(line, ",")
	for i, f := range fields {
		fields[i] = strings.Trim(strings.TrimSpace(f), `"`)
	}
	return fields
}

// headerIndex builds a column-name lookup for header-driven tables.
func headerIndex(header string) func(col string) int {
	cols := splitRow(header)
	return func(col string) int {
		for i, h := range cols {
			if strings.EqualFold(h, col) {
				return i
			}
		}
		return -1
	}
}

// loadRoutes parses routes.txt positionally:
// route_id, short_name, long_name, _, color, text_color.
func (c *Catalog) loadRoutes(lines []string) {
	for _, line := range dataRows(lines) {
		f := splitRow(line)
		if len(f) < 3 {
			log.Printf("routes.txt: skipping row with %d fields: %q", len(f), line)
			continue
		}
		r := Route{
			RouteID:   f[0],
			ShortName: f[1],
			LongName:  f[2],
			Color:     defaultRouteColor,
			TextColor: defaultRouteTextColor,
		}
		if len(f) > 4 && f[4] != "" {
			r.Color = f[4]
		}
		if len(f) > 5 && f[5] != "" {
			r.TextColor = f[5]
		}
		c.AddRoute(r)
	}
}

// loadTrips parses trips.txt positionally: route_id, _, trip_id, headsign.
func (c *Catalog) loadTrips(lines []string) {
	for _, line := range dataRows(lines) {
		f := splitRow(line)
		if len(f) < 3 {
			log.Printf("trips.txt: skipping row with %d fields: %q", len(f), line)
			continue
		}
		t := Trip{RouteID: f[0], TripID: f[2]}
		if len(f) > 3 {
			t.Headsign = f[3]
		}
		c.AddTrip(t)
	}
}

func (c *Catalog) loadStops(lines []string) {
	if len(lines) == 0 {
		return
	}
	idx := headerIndex(lines[0])
	sID, sName := idx("stop_id"), idx("stop_name")
	sDesc, sCode := idx("stop_desc"), idx("stop_code")
	sLat, sLon := idx("stop_lat"), idx("stop_lon")
	if sID < 0 || sName < 0 || sLat < 0 || sLon < 0 {
		log.Printf("stops.txt: missing required columns, no stops loaded")
		return
	}
	required := maxIndex(sID, sName, sLat, sLon)
	for _, line := range dataRows(lines) {
		f := splitRow(line)
		if len(f) <= required {
			log.Printf("stops.txt: skipping row with %d fields: %q", len(f), line)
			continue
		}
		lat, errLat := strconv.ParseFloat(f[sLat], 64)
		lon, errLon := strconv.ParseFloat(f[sLon], 64)
		if errLat != nil || errLon != nil {
			log.Printf("stops.txt: skipping stop %s with non-numeric coordinates", f[sID])
			continue
		}
		s := Stop{StopID: f[sID], Name: f[sName], Lat: lat, Lon: lon}
		if sDesc >= 0 && sDesc < len(f) {
			s.Desc = f[sDesc]
		}
		if sCode >= 0 && sCode < len(f) {
			s.Code = f[sCode]
		}
		c.AddStop(s)
	}
}

func (c *Catalog) loadStopTimes(lines []string) {
	if len(lines) == 0 {
		return
	}
	idx := headerIndex(lines[0])
	tID, sID, seq := idx("trip_id"), idx("stop_id"), idx("stop_sequence")
	arr, dep := idx("arrival_time"), idx("departure_time")
	if tID < 0 || sID < 0 || seq < 0 {
		log.Printf("stop_times.txt: missing required columns, no stop times loaded")
		return
	}
	required := maxIndex(tID, sID, seq)
	for _, line := range dataRows(lines) {
		f := splitRow(line)
		if len(f) <= required {
			log.Printf("stop_times.txt: skipping row with %d fields: %q", len(f), line)
			continue
		}
		n, err := strconv.Atoi(f[seq])
		if err != nil {
			log.Printf("stop_times.txt: skipping row with non-numeric stop_sequence %q", f[seq])
			continue
		}
		st := StopTime{TripID: f[tID], StopID: f[sID], StopSequence: n}
		if arr >= 0 && arr < len(f) {
			st.ArrivalTime = f[arr]
		}
		if dep >= 0 && dep < len(f) {
			st.DepartureTime = f[dep]
		}
		c.AddStopTime(st)
	}
}

// dataRows skips the header line and blank lines.
func dataRows(lines []string) []string {
	if len(lines) < 2 {
		return nil
	}
	out := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func maxIndex(idxs ...int) int {
	m := 0
	for _, i := range idxs {
		if i > m {
			m = i
		}
	}
	return m
}
