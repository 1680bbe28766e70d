package cmd

import (
	"flag"

	"github.com/joechiboo/homecalc"
	"github.com/joechiboo/homecalc/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion. Flags are
// predicted from their name: plan files, fund codes, or anything.
func Completion() *complete.Command {
	var names []string
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{"v": predict.Nothing},
	}
	for _, g := range groups {
		for _, c := range g.commands {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}}
			f.VisitAll(func(fl *flag.Flag) { sub.Flags[fl.Name] = predictFlag(fl) })
			root.Sub[c.Name()] = sub
			names = append(names, c.Name())
		}
	}

	root.Sub["funds"].Args = fundCodes()
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme"))
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names)}
	root.Sub["flags"] = &complete.Command{}
	root.Sub["commands"] = &complete.Command{}
	return root
}

func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "plan":
		return predict.Files("*.json")
	case "fund":
		return fundCodes()
	}
	return predict.Something
}

func fundCodes() predict.Set {
	var codes predict.Set
	for _, f := range homecalc.Funds() {
		codes = append(codes, f.Code)
	}
	return codes
}
