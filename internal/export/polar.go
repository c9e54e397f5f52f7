package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/windlab/sailforce/internal/solver"
)

// PolarCSV writes a course sweep as CSV rows of course, drive and top speed.
func PolarCSV(w io.Writer, points []solver.PolarPoint) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"course_deg", "drive_n", "top_speed_ms"}); err != nil {
		return err
	}

	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.CourseAngleDeg, 'f', 1, 64),
			strconv.FormatFloat(p.DriveN, 'f', 6, 64),
			strconv.FormatFloat(p.TopSpeed, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}

type polarJSON struct {
	Samples int                 `json:"samples"`
	Points  []solver.PolarPoint `json:"points"`
}

// PolarJSON writes a course sweep as indented JSON.
func PolarJSON(w io.Writer, points []solver.PolarPoint) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(polarJSON{Samples: len(points), Points: points})
}
