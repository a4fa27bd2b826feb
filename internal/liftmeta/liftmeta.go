package liftmeta

import (
	"encoding/json"

	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/liftsched"
	"github.com/manoj-bhaskaran/lift-simulator-sub003/internal/logger"
)

var Log = logger.GetLogger()

// RunMetaData identifies a simulation run in log output and reports.
type RunMetaData struct {
	Name     string             `json:"name"`
	Strategy liftsched.Strategy `json:"strategy"`
	MinFloor int                `json:"min_floor"`
	MaxFloor int                `json:"max_floor"`
	Ticks    int                `json:"ticks"`
}

func (runMetaData *RunMetaData) String() string {
	jsonData, err := json.Marshal(runMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising RunMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
