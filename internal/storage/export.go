package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportData is the JSON export shape for one run.
type ExportData struct {
	RunMetadata
	Samples []Sample `json:"samples"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []Sample) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Samples: samples})
}

// ExportCSV writes a run's sample table as CSV.
func ExportCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatUint(s.Frame, 10),
			strconv.FormatFloat(s.Time, 'f', 6, 64),
			strconv.FormatFloat(s.Displacement, 'f', 6, 64),
			strconv.FormatFloat(s.Velocity, 'f', 6, 64),
			strconv.FormatFloat(s.EMF, 'f', 6, 64),
			strconv.FormatFloat(s.Charge, 'f', 6, 64),
			strconv.Itoa(s.Particles),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
