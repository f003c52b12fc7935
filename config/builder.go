package config

import (
	"github.com/jpalmerr/whitelodge"
)

// BuildRegistry converts parsed configuration into a live [whitelodge.Registry].
//
// Each declared store is constructed in declaration order; base options
// (e.g. [whitelodge.WithLogger]) are applied before the declaration-derived
// ones, so declarations win where they overlap. Name uniqueness has already
// been checked by [Parse], so registry construction only fails on SDK-level
// validation errors.
func BuildRegistry(cfg *Config, base ...whitelodge.StoreOption) (*whitelodge.Registry, error) {
	stores := make([]*whitelodge.Store, 0, len(cfg.Stores))

	for _, sc := range cfg.Stores {
		store, err := buildStore(sc, base)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return whitelodge.NewRegistry(stores...)
}

// buildStore converts a single StoreConfig to an SDK Store.
func buildStore(sc StoreConfig, base []whitelodge.StoreOption) (*whitelodge.Store, error) {
	opts := make([]whitelodge.StoreOption, 0, len(base)+3)
	opts = append(opts, base...)

	opts = append(opts,
		whitelodge.WithInitialState(sc.InitialState),
		whitelodge.WithHistoryDepth(sc.HistoryDepth),
		whitelodge.WithStateLogging(sc.LogState),
	)

	return whitelodge.NewStore(sc.Name, opts...)
}
