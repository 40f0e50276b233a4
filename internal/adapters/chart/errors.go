package chart

import "errors"

// Sentinel kinds for rendering errors.
var (
	ErrBuildPlot = errors.New("build plot failed")
	ErrSaveChart = errors.New("save chart failed")
)
