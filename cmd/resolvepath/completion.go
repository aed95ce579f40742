package main

import (
	"strings"

	"github.com/d2verb/resolvepath"
	"github.com/posener/complete"
)

// pathPredictor completes file paths, including paths starting with "~/".
type pathPredictor struct {
	files    complete.Predictor
	resolver *resolvepath.Resolver
}

func newPathPredictor() complete.Predictor {
	return &pathPredictor{
		files:    complete.PredictFiles("*"),
		resolver: &resolvepath.Resolver{},
	}
}

// Predict implements complete.Predictor interface.
func (p *pathPredictor) Predict(args complete.Args) []string {
	if args.Last != "~" && !strings.HasPrefix(args.Last, "~/") {
		return p.files.Predict(args)
	}

	home, err := p.resolver.ExpandTilde("~")
	if err != nil {
		return nil
	}
	expanded := home + args.Last[1:]

	expandedArgs := args
	expandedArgs.Last = expanded
	results := p.files.Predict(expandedArgs)

	// Offer completions in the form the user typed them.
	for i, r := range results {
		if rest, ok := strings.CutPrefix(r, home); ok {
			results[i] = "~" + rest
		}
	}
	return results
}
