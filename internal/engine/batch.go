package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/talgya/minisim/internal/agent"
	"github.com/talgya/minisim/internal/model"
)

// pairTask carries one pair together with snapshots of the two agents as
// they were at the start of the tick. Workers never index into the shared
// population, so no locking is needed anywhere in the tick.
type pairTask struct {
	i, j int
	a, b agent.Agent
}

// contribution is one updated preference triple destined for an agent index.
type contribution struct {
	index int
	prefs [3]float64
}

// UpdateTick runs every pair against pre-tick agent snapshots and returns
// the next population. Agents accumulate one contribution per pair they
// appear in; their new preferences are the component-wise mean of those
// contributions. Agents with no contributions keep their prior preferences.
//
// The result depends only on the pair set and the pre-tick values, never on
// chunkSize, workers, or scheduling order.
func UpdateTick(pop []agent.Agent, pairs []Pair, chunkSize, workers int) ([]agent.Agent, error) {
	updates := make(map[int][][3]float64)
	collect := func(c contribution) {
		updates[c.index] = append(updates[c.index], c.prefs)
	}

	if workers <= 1 {
		for _, batch := range partitionPairs(pairs, chunkSize) {
			for _, p := range batch {
				aPrefs, bPrefs := model.Talk(pop[p.I], pop[p.J])
				collect(contribution{index: p.I, prefs: aPrefs})
				collect(contribution{index: p.J, prefs: bPrefs})
			}
		}
	} else {
		contribs, err := runBatches(pop, pairs, chunkSize, workers)
		if err != nil {
			return nil, err
		}
		for _, c := range contribs {
			collect(c)
		}
	}

	next := make([]agent.Agent, len(pop))
	for i, a := range pop {
		if triples, ok := updates[i]; ok {
			a.Preferences = meanTriple(triples)
		}
		next[i] = a
	}
	return next, nil
}

// runBatches fans contiguous batches out over a fixed-size worker pool.
// Results may complete in any order; they are re-ordered by batch index
// before being returned, so the parallel path feeds the aggregation the
// exact contribution sequence the sequential path would.
func runBatches(pop []agent.Agent, pairs []Pair, chunkSize, workers int) ([]contribution, error) {
	batches := make([][]pairTask, 0, (len(pairs)+chunkSize-1)/chunkSize)
	for _, chunk := range partitionPairs(pairs, chunkSize) {
		batch := make([]pairTask, 0, len(chunk))
		for _, p := range chunk {
			batch = append(batch, pairTask{i: p.I, j: p.J, a: pop[p.I], b: pop[p.J]})
		}
		batches = append(batches, batch)
	}

	type batchResult struct {
		batch    int
		contribs []contribution
		err      error
	}

	tasks := make(chan int, len(batches))
	results := make(chan batchResult, len(batches))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				res := batchResult{batch: idx}
				func() {
					defer func() {
						if r := recover(); r != nil {
							res.err = fmt.Errorf("batch %d: %v", idx, r)
						}
					}()
					res.contribs = talkBatch(batches[idx])
				}()
				results <- res
			}
		}()
	}

	for idx := range batches {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()
	close(results)

	ordered := make([][]contribution, len(batches))
	var errs []error
	for res := range results {
		if res.err != nil {
			errs = append(errs, res.err)
			continue
		}
		ordered[res.batch] = res.contribs
	}
	if len(errs) > 0 {
		// A failed worker fails the whole run; no partial results.
		return nil, errors.Join(errs...)
	}

	out := make([]contribution, 0, 2*len(pairs))
	for _, contribs := range ordered {
		out = append(out, contribs...)
	}
	return out, nil
}

// talkBatch processes one self-contained batch. It touches only the agent
// values captured when the batch was built.
func talkBatch(batch []pairTask) []contribution {
	out := make([]contribution, 0, 2*len(batch))
	for _, task := range batch {
		aPrefs, bPrefs := model.Talk(task.a, task.b)
		out = append(out,
			contribution{index: task.i, prefs: aPrefs},
			contribution{index: task.j, prefs: bPrefs},
		)
	}
	return out
}

// partitionPairs splits pairs into contiguous chunks of at most chunkSize,
// preserving generator order.
func partitionPairs(pairs []Pair, chunkSize int) [][]Pair {
	if len(pairs) == 0 {
		return nil
	}
	chunks := make([][]Pair, 0, (len(pairs)+chunkSize-1)/chunkSize)
	for start := 0; start < len(pairs); start += chunkSize {
		end := min(start+chunkSize, len(pairs))
		chunks = append(chunks, pairs[start:end])
	}
	return chunks
}

// meanTriple averages contributions component-wise, summing in slice order
// so the result is bitwise stable for a fixed contribution sequence.
func meanTriple(triples [][3]float64) [3]float64 {
	var sum [3]float64
	for _, t := range triples {
		sum[0] += t[0]
		sum[1] += t[1]
		sum[2] += t[2]
	}
	n := float64(len(triples))
	return [3]float64{sum[0] / n, sum[1] / n, sum[2] / n}
}
