// Package snapshot - post-run verification shared by both algorithms.
package snapshot

import "github.com/kaerlev/distsim/simulate"

// summarize writes the verdict block and builds the Result. order is the
// node layout of the run; records holds the snapshot of every node that cut.
//
// The sums are only computed for a complete snapshot: a consistent cut must
// satisfy Σ states + Σ recorded increments - Σ recorded decrements == the
// conserved global total, and a partial sum would just be noise.
func summarize(tr *simulate.Trace, order []string, records map[string]*Record) *Result {
	tr.Blank()

	res := &Result{
		Complete: len(records) == len(order),
		Records:  records,
	}

	if res.Complete {
		tr.Printf("Snapshot completed.")
		for _, name := range order {
			rec := records[name]
			res.StateTotal += rec.State
			for _, m := range rec.Messages {
				if m.Kind == Increment {
					res.MessageTotal++
				} else {
					res.MessageTotal--
				}
			}
		}
		tr.Printf("Node total: %d", res.StateTotal)
		tr.Printf("Message total: %d", res.MessageTotal)
	} else {
		tr.Printf("Snapshot did not complete.")
	}

	for _, name := range order {
		tr.Printf("%s: %s", name, records[name])
	}
	tr.Blank()

	return res
}
