package cmd

import (
	"flag"

	"github.com/etnz/inventory/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors overrides the default predictor for well known flags.
var flagPredictors = map[string]complete.Predictor{
	"inventory-file": predict.Files("*.json"),
	"currency":       predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
}

// Completion returns the shell completion tree of the application, built from
// the global flags and the flags each subcommand declares.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: predictors(global),
	}
	for _, x := range commands {
		f := flag.NewFlagSet(x.cmd.Name(), flag.ContinueOnError)
		x.cmd.SetFlags(f)
		root.Sub[x.cmd.Name()] = &complete.Command{Flags: predictors(f)}
	}
	topics := predict.Set{"readme", "*"}
	if all, err := docs.GetAllTopics(); err == nil {
		topics = append(topics, all...)
	}
	root.Sub["topic"].Args = topics
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

func predictors(f *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		p, ok := flagPredictors[fl.Name]
		switch {
		case ok:
		case isBool(fl):
			p = predict.Nothing
		default:
			p = predict.Something
		}
		m[fl.Name] = p
	})
	return m
}

func isBool(fl *flag.Flag) bool {
	b, ok := fl.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
