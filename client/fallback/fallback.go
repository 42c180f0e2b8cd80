// Package fallback supplies the records shown when the backend cannot be
// reached. The demo dataset is compiled into the binary.
package fallback

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/wanderlust/travel-client/client/internal/types"
)

//go:embed demo.json
var demoJSON []byte

// Mode selects when fallback data replaces live reads.
type Mode string

const (
	// ModeAuto reads from the backend and serves the dataset when a read fails.
	ModeAuto Mode = "auto"
	// ModeOff surfaces every failure to the caller.
	ModeOff Mode = "off"
	// ModeDemo never calls the backend for reads.
	ModeDemo Mode = "demo"
)

// ParseMode accepts auto, off or demo (case-insensitive). Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeOff, ModeDemo:
		return m, nil
	default:
		return "", fmt.Errorf("unknown fallback mode %q (want auto, off or demo)", s)
	}
}

// Dataset is a full set of fallback records.
type Dataset struct {
	Packages []types.Package  `json:"packages"`
	Travels  []types.Travel   `json:"travels"`
	Hotels   []types.Hotel    `json:"hotels"`
	Feedback []types.Feedback `json:"feedback"`
}

// DataSource yields fallback records. Implementations must return fresh
// slices so callers may modify them.
type DataSource interface {
	Packages() []types.Package
	Travels() []types.Travel
	Hotels() []types.Hotel
	Feedback() []types.Feedback
}

var (
	demoOnce sync.Once
	demo     Dataset
	demoErr  error
)

// Demo returns the embedded demo dataset.
func Demo() (Dataset, error) {
	demoOnce.Do(func() {
		demoErr = json.Unmarshal(demoJSON, &demo)
	})
	if demoErr != nil {
		return Dataset{}, fmt.Errorf("decode demo dataset: %w", demoErr)
	}
	return demo.clone(), nil
}

// MustDemo is Demo for callers that treat a broken embedded asset as fatal.
func MustDemo() Dataset {
	d, err := Demo()
	if err != nil {
		panic(err)
	}
	return d
}

// Static serves a fixed Dataset.
type Static struct{ Data Dataset }

// NewStatic wraps d as a DataSource.
func NewStatic(d Dataset) *Static { return &Static{Data: d} }

// Packages returns a copy of the stored packages.
func (s *Static) Packages() []types.Package { return append([]types.Package(nil), s.Data.Packages...) }
// Travels returns a copy of the stored travels.
func (s *Static) Travels() []types.Travel { return append([]types.Travel(nil), s.Data.Travels...) }
// Hotels returns a copy of the stored hotels.
func (s *Static) Hotels() []types.Hotel { return append([]types.Hotel(nil), s.Data.Hotels...) }
// Feedback returns a copy of the stored testimonials.
func (s *Static) Feedback() []types.Feedback { return append([]types.Feedback(nil), s.Data.Feedback...) }

// Empty serves nothing; used with ModeOff.
type Empty struct{}

// Packages returns nil.
func (Empty) Packages() []types.Package { return nil }
// Travels returns nil.
func (Empty) Travels() []types.Travel { return nil }
// Hotels returns nil.
func (Empty) Hotels() []types.Hotel { return nil }
// Feedback returns nil.
func (Empty) Feedback() []types.Feedback { return nil }

func (d Dataset) clone() Dataset {
	return Dataset{
		Packages: append([]types.Package(nil), d.Packages...),
		Travels:  append([]types.Travel(nil), d.Travels...),
		Hotels:   append([]types.Hotel(nil), d.Hotels...),
		Feedback: append([]types.Feedback(nil), d.Feedback...),
	}
}
