// Package trackers implements Trackers, which track and save data in an
// experiment
package trackers

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/tabular/timestep"
	"gonum.org/v1/gonum/stat"
)

// Tracker keeps track of experiment data and saves the data after the
// experiment has finished
type Tracker interface {
	Track(t ts.TimeStep)
	Save() error
}

// DataTracker is a Tracker which tracks one value per episode
type DataTracker interface {
	Tracker
	Name() string
	Data() []float64
}

// save gob encodes data to the file at filename. Trackers without a
// filename track data in memory only and save nothing.
func save(filename string, data []float64) error {
	if filename == "" {
		return nil
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save: could not open save file")
	}
	defer file.Close()

	en := gob.NewEncoder(file)
	if err = en.Encode(data); err != nil {
		return errors.Wrap(err, "save: could not encode data")
	}
	return nil
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loadData: could not open data file")
	}
	defer file.Close()

	dec := gob.NewDecoder(file)
	var data []float64

	if err = dec.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "loadData: could not decode data")
	}
	return data, nil
}

// Mean returns the mean of the last n values tracked by t, or of all
// values if fewer than n were tracked. Mean returns 0 if t has no data.
func Mean(t DataTracker, n int) float64 {
	data := t.Data()
	if len(data) == 0 {
		return 0.0
	}
	if n > 0 && n < len(data) {
		data = data[len(data)-n:]
	}
	return stat.Mean(data, nil)
}
