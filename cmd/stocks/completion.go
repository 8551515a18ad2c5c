package main

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
// Install with COMP_INSTALL=1 stocks.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"config": predict.Files("*.yaml"),
		"plain":  predict.Nothing,
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"list": {
				Flags: map[string]complete.Predictor{
					"q":       predict.Something,
					"sector":  predict.Something,
					"codes":   predict.Something,
					"refresh": predict.Nothing,
				},
			},
			"show": {
				Flags: map[string]complete.Predictor{"history": predict.Nothing},
				Args:  predict.Something,
			},
			"sectors":  {},
			"movers":   {Flags: map[string]complete.Predictor{"n": predict.Something}},
			"help":     {Args: predict.Set{"list", "show", "sectors", "movers"}},
			"flags":    {},
			"commands": {},
		},
		Flags: global,
	}
}
