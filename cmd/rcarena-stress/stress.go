package main

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/pavanmanishd/rcarena"
)

type result struct {
	live     rcarena.ArenaStats // taken before any handle is released
	dead     int                // references that went dead after the last release
	released int                // handles released
}

// runStress allocates cfg.Count integers, checks every reference while the
// arena is alive, then releases all handles and checks that every
// reference went dead exactly at the last release.
func runStress(cfg config, logger log.Logger, metrics *rcarena.Metrics) (result, error) {
	var res result
	if err := cfg.validate(); err != nil {
		return res, err
	}

	a, err := rcarena.NewWithConfig[int](cfg.Arena, rcarena.WithLogger(logger), rcarena.WithMetrics(metrics))
	if err != nil {
		return res, err
	}

	refs := make([]rcarena.Ref[int], 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		r := a.Alloc(i)
		if v, ok := r.TryGet(); !ok || v != i {
			a.Release()
			return res, errors.Errorf("value %d read back as %d (alive=%t) right after allocation", i, v, ok)
		}
		refs = append(refs, r)
	}
	if err := checkRefs(refs, true); err != nil {
		a.Release()
		return res, err
	}

	handles := []*rcarena.Arena[int]{a}
	for i := 0; i < cfg.Clones; i++ {
		handles = append(handles, a.Clone())
	}
	res.live = a.Stats()
	level.Info(logger).Log("msg", "allocation finished", "values", res.live.Len, "segments", res.live.NumSegments, "handles", res.live.Handles)

	for i, h := range handles {
		h.Release()
		res.released++
		last := i == len(handles)-1
		if err := checkRefs(refs, !last); err != nil {
			return res, errors.Wrapf(err, "after releasing handle %d of %d", i+1, len(handles))
		}
	}
	res.dead = len(refs)
	level.Info(logger).Log("msg", "all handles released", "dead_refs", res.dead)
	return res, nil
}

func checkRefs(refs []rcarena.Ref[int], alive bool) error {
	for i, r := range refs {
		v, ok := r.TryGet()
		if ok != alive {
			return errors.Errorf("reference %d: alive=%t, want %t", i, ok, alive)
		}
		if ok && v != i {
			return errors.Errorf("reference %d: read %d", i, v)
		}
	}
	return nil
}
