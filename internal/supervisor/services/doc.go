// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package services adapts stylist components to suture.Service.

  - APIServer: ListenAndServe in a goroutine, Shutdown on cancel.
  - CacheJanitor: sweeps expired profiles from the recommendation engine's
    profile cache on a fixed interval.

Return values follow suture's contract: ctx.Err() on requested shutdown,
any other error to request a restart.
*/
package services
